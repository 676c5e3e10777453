package types

import (
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-inspector/hydration"
)

// ElementID identifies an element in the remote tree. Ids are assigned by the peer.
type ElementID uint64

// String returns a string representation of the ElementID, for logging purposes.
func (id ElementID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Field returns a log field.
func (id ElementID) Field() zap.Field { return zap.Uint64("element_id", uint64(id)) }

// RendererID identifies the remote runtime instance that owns an element.
type RendererID uint64

// Field returns a log field.
func (id RendererID) Field() zap.Field { return zap.Uint64("renderer_id", uint64(id)) }

// Element is the locally known summary of a remote element.
type Element struct {
	ID          ElementID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// ElementRef addresses an element in outbound requests.
type ElementRef struct {
	ID         ElementID  `json:"id"`
	RendererID RendererID `json:"rendererID"`
}

// MarshalLogObject implements logging interface.
func (r ElementRef) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("id", uint64(r.ID))
	encoder.AddUint64("renderer", uint64(r.RendererID))
	return nil
}

// Source is the location of an element's definition.
type Source struct {
	FileName   string `json:"fileName"`
	LineNumber int    `json:"lineNumber"`
}

// Owner is an element in the owner chain of an inspected element.
type Owner struct {
	ID          ElementID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// InspectedElement is the payload of an inspectedElement message, before hydration.
type InspectedElement struct {
	ID      ElementID             `json:"id"`
	Source  *Source               `json:"source"`
	Owners  []Owner               `json:"owners"`
	Context *hydration.Dehydrated `json:"context"`
	Hooks   *hydration.Dehydrated `json:"hooks"`
	Props   *hydration.Dehydrated `json:"props"`
	State   *hydration.Dehydrated `json:"state"`
}

// MarshalLogObject implements logging interface.
func (e *InspectedElement) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("id", uint64(e.ID))
	encoder.AddBool("context", e.Context != nil)
	encoder.AddBool("hooks", e.Hooks != nil)
	encoder.AddBool("props", e.Props != nil)
	encoder.AddBool("state", e.State != nil)
	encoder.AddInt("owners", len(e.Owners))
	return nil
}
