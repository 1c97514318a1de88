package sequence

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/chunkseq/chunklevel"
	"github.com/vkngwrapper/chunkseq/memutils"
)

// table is a named, compiled-in chunk allocation sequence
type table struct {
	name     string
	sequence *ConstantSequence
}

var (
	standardNonClass = &table{"standard_non_class", MustConstantSequence(chunklevel.Level4K, chunklevel.Level4K, chunklevel.Level4K, chunklevel.Level4K, chunklevel.Level16K)}
	standardClass    = &table{"standard_class", MustConstantSequence(chunklevel.Level2K, chunklevel.Level2K, chunklevel.Level2K, chunklevel.Level2K, chunklevel.Level16K)}

	classMirrorHolderNonClass = &table{"class_mirror_holder_non_class", MustConstantSequence(chunklevel.Level1K)}
	classMirrorHolderClass    = &table{"class_mirror_holder_class", MustConstantSequence(chunklevel.Level1K)}

	reflectionNonClass = &table{"reflection_non_class", MustConstantSequence(chunklevel.Level2K, chunklevel.Level1K)}
	reflectionClass    = &table{"reflection_class", MustConstantSequence(chunklevel.Level1K)}

	// The boot loader gets large chunks. Past the commit granule size, large chunks cost
	// little more than small ones since they are committed on demand.
	bootNonClass = &table{"boot_non_class", MustConstantSequence(chunklevel.Level4M, chunklevel.Level1M)}
	bootClass    = &table{"boot_class", MustConstantSequence(chunklevel.Level1M, chunklevel.Level256K)}
)

// tables lists every compiled-in sequence, including ones the registry does not route to
var tables = []*table{
	standardNonClass,
	standardClass,
	classMirrorHolderNonClass,
	classMirrorHolderClass,
	reflectionNonClass,
	reflectionClass,
	bootNonClass,
	bootClass,
}

const (
	nonClassIndex = 0
	classIndex    = 1
)

var registry = [spaceTypeCount][2]*table{
	StandardSpaceType:          {nonClassIndex: standardNonClass, classIndex: standardClass},
	ReflectionSpaceType:        {nonClassIndex: reflectionNonClass, classIndex: reflectionClass},
	ClassMirrorHolderSpaceType: {nonClassIndex: classMirrorHolderNonClass, classIndex: classMirrorHolderClass},
	// Class data for the boot loader is routed to the non-class table, not bootClass.
	BootSpaceType: {nonClassIndex: bootNonClass, classIndex: bootNonClass},
}

func init() {
	for _, t := range tables {
		memutils.DebugValidate(t.sequence)
	}

	for spaceType, entries := range registry {
		for flag, entry := range entries {
			if entry == nil {
				panic(errors.AssertionFailedf("no chunk allocation sequence for space type %s (class: %t)", SpaceType(spaceType), flag == classIndex))
			}
		}
	}
}

func flagIndex(isClass bool) int {
	if isClass {
		return classIndex
	}
	return nonClassIndex
}

func lookup(spaceType SpaceType, isClass bool) *table {
	if !spaceType.IsValid() {
		panic(errors.AssertionFailedf("unrecognized space type %s", spaceType))
	}
	return registry[spaceType][flagIndex(isClass)]
}

// ForSpaceType returns the chunk allocation sequence for arena contexts of the provided space
// type. isClass selects between the class data and non-class data sequences. Passing an
// unrecognized space type panics.
func ForSpaceType(spaceType SpaceType, isClass bool) ChunkAllocSequence {
	return lookup(spaceType, isClass).sequence
}

// Entry describes a single registry mapping
type Entry struct {
	SpaceType SpaceType
	IsClass   bool
	TableName string
	Sequence  *ConstantSequence
}

// Entries returns one Entry for every combination of space type and class flag
func Entries() []Entry {
	entries := make([]Entry, 0, int(spaceTypeCount)*2)
	for _, spaceType := range SpaceTypes() {
		for _, isClass := range []bool{false, true} {
			t := lookup(spaceType, isClass)
			entries = append(entries, Entry{
				SpaceType: spaceType,
				IsClass:   isClass,
				TableName: t.name,
				Sequence:  t.sequence,
			})
		}
	}
	return entries
}
