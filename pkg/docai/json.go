package docai

import (
	"fmt"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// DocumentFromJSON loads a Document proto from a saved protojson API
// response, so documents can be re-streamed offline without another
// Document AI call. Unknown fields are tolerated to stay compatible with
// dumps from newer API versions.
func DocumentFromJSON(data []byte) (*documentaipb.Document, error) {
	var doc documentaipb.Document
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse Document AI JSON: %w", err)
	}
	return &doc, nil
}

// ToJSON converts a proto message (typically the raw API response) to a
// JSON string for debugging.
func ToJSON(msg proto.Message) (string, error) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
