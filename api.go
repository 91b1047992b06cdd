package eventwire

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/empowerchain/eventwire/events"
	"github.com/empowerchain/eventwire/registry"
	"github.com/empowerchain/eventwire/schema"
	"github.com/empowerchain/eventwire/wire"
)

// ===== SCHEMA-AWARE API =====

// EventWire provides schema-aware protobuf operations without generated code.
// The plasticcredit events are registered up front; more messages can be
// loaded from .proto files.
type EventWire struct {
	registry *registry.Registry
	cfg      wire.Config
}

// New creates a new EventWire instance. protoDirectories are the roots
// .proto files are resolved against.
func New(protoDirectories []string) *EventWire {
	r := registry.NewRegistry(protoDirectories)
	if err := r.Register(events.Descriptors()...); err != nil {
		// descriptors are validated when the bindings are built
		panic(err)
	}
	return &EventWire{
		registry: r,
		cfg:      wire.GetConfig(),
	}
}

// SetConfig sets the decoding options used by Parse and Unmarshal
func (p *EventWire) SetConfig(cfg wire.Config) {
	p.cfg = cfg
}

// LoadSchemaFromFile loads a .proto file, or every .proto file below a
// directory, along with everything they import
func (p *EventWire) LoadSchemaFromFile(protoPath string) error {
	return p.registry.LoadSchema(protoPath)
}

// Parse decodes protobuf bytes using schema-aware decoder
func (p *EventWire) Parse(data []byte, messageType string) (map[string]interface{}, error) {
	msg, err := p.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type %s: %w", messageType, err)
	}

	d := wire.NewDecoderWithConfig(data, p.cfg)
	return wire.NewMessageDecoder(d).DecodeMessage(msg)
}

// Marshal encodes a map to protobuf bytes using schema information
func (p *EventWire) Marshal(data map[string]interface{}, messageType string) ([]byte, error) {
	msg, err := p.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type %s: %w", messageType, err)
	}
	return wire.EncodeMessage(data, msg)
}

// Default returns the all-default value of a message type
func (p *EventWire) Default(messageType string) (map[string]interface{}, error) {
	msg, err := p.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type %s: %w", messageType, err)
	}
	return wire.NewDefault(msg), nil
}

// Merge builds a full value of a message type from a partial one
func (p *EventWire) Merge(partial map[string]interface{}, messageType string) (map[string]interface{}, error) {
	msg, err := p.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type %s: %w", messageType, err)
	}
	return wire.MergeFrom(partial, msg)
}

// Unmarshal decodes protobuf bytes into a Go struct using reflection. The
// message type is the struct's type name; struct fields match proto field
// names through their json tag, or the field name itself.
func (p *EventWire) Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	messageType := rv.Elem().Type().Name()
	result, err := p.Parse(data, messageType)
	if err != nil {
		return err
	}

	return p.mapToStruct(result, rv.Elem())
}

// mapToStruct maps parsed result to struct fields
func (p *EventWire) mapToStruct(data map[string]interface{}, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fieldValue := rv.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			if tagName, _, _ := strings.Cut(tag, ","); tagName != "" && tagName != "-" {
				name = tagName
			}
		}
		if value, ok := data[name]; ok {
			if err := p.setFieldValue(fieldValue, value); err != nil {
				return fmt.Errorf("failed to set field %s: %v", field.Name, err)
			}
		}
	}
	return nil
}

// setFieldValue sets a struct field with type conversion
func (p *EventWire) setFieldValue(fieldValue reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}

	sourceValue := reflect.ValueOf(value)
	if sourceValue.Type().AssignableTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue)
		return nil
	}

	if sourceValue.Type().ConvertibleTo(fieldValue.Type()) {
		fieldValue.Set(sourceValue.Convert(fieldValue.Type()))
		return nil
	}

	return fmt.Errorf("cannot convert %T to %s", value, fieldValue.Type())
}

// ===== REGISTRY ACCESS =====

func (p *EventWire) GetRegistry() *registry.Registry { return p.registry }
func (p *EventWire) ListMessages() []string          { return p.registry.ListMessages() }

// Describe returns the descriptor of a message type
func (p *EventWire) Describe(messageType string) (*schema.Message, error) {
	return p.registry.GetMessage(messageType)
}
