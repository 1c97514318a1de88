package sequence

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// WriteJSON writes every compiled-in sequence, followed by the registry mapping from space
// type and class flag to sequence, as a single JSON object.
func WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	tablesObj := obj.Name("Tables").Object()
	for _, t := range tables {
		levelsArr := tablesObj.Name(t.name).Array()
		for _, level := range t.sequence.levels {
			levelsArr.String(level.String())
		}
		levelsArr.End()
	}
	tablesObj.End()

	registryArr := obj.Name("Registry").Array()
	for _, entry := range Entries() {
		entryObj := registryArr.Object()
		entryObj.Name("SpaceType").String(entry.SpaceType.String())
		entryObj.Name("Class").Bool(entry.IsClass)
		entryObj.Name("Table").String(entry.TableName)
		entryObj.Name("Ramp").Int(entry.Sequence.Len() - 1)
		entryObj.Name("Plateau").String(entry.Sequence.Plateau().String())
		entryObj.End()
	}
	registryArr.End()
}

// RegistryJSON renders WriteJSON into a byte slice
func RegistryJSON() ([]byte, error) {
	writer := jwriter.NewWriter()
	WriteJSON(&writer)
	return writer.Bytes(), writer.Error()
}
