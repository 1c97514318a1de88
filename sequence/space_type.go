package sequence

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
)

// SpaceType identifies the kind of owner an arena context serves. Each space type grows
// its chunks according to its own sequence.
type SpaceType uint8

const (
	// StandardSpaceType is used by ordinary loaders
	StandardSpaceType SpaceType = iota
	// ReflectionSpaceType is used by loaders that hold generated reflection accessors
	ReflectionSpaceType
	// ClassMirrorHolderSpaceType is used by short-lived holders of a single anonymous class
	ClassMirrorHolderSpaceType
	// BootSpaceType is used by the bootstrap loader, whose footprint is large
	BootSpaceType

	spaceTypeCount
)

var spaceTypeNames = [spaceTypeCount]string{
	StandardSpaceType:          "Standard",
	ReflectionSpaceType:        "Reflection",
	ClassMirrorHolderSpaceType: "ClassMirrorHolder",
	BootSpaceType:              "Boot",
}

var spaceTypesByName *swiss.Map[string, SpaceType]

func init() {
	spaceTypesByName = swiss.NewMap[string, SpaceType](uint32(spaceTypeCount) * 2)
	for i, name := range spaceTypeNames {
		spaceType := SpaceType(i)
		spaceTypesByName.Put(strings.ToLower(name), spaceType)
	}

	spaceTypesByName.Put("class-mirror-holder", ClassMirrorHolderSpaceType)
	spaceTypesByName.Put("anonymous", ClassMirrorHolderSpaceType)
	spaceTypesByName.Put("bootstrap", BootSpaceType)
}

// IsValid returns true if the space type is one of the recognized space types
func (t SpaceType) IsValid() bool {
	return t < spaceTypeCount
}

func (t SpaceType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("SpaceType(%d)", uint8(t))
	}
	return spaceTypeNames[t]
}

// SpaceTypes returns every recognized space type
func SpaceTypes() []SpaceType {
	types := make([]SpaceType, 0, spaceTypeCount)
	for t := SpaceType(0); t < spaceTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseSpaceType accepts a space type name, case-insensitively, and returns the matching SpaceType
func ParseSpaceType(name string) (SpaceType, error) {
	spaceType, ok := spaceTypesByName.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return 0, errors.Newf("unknown space type %q", name)
	}
	return spaceType, nil
}
