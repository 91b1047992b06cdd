package schema

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FromDescriptor converts a protobuf-go message descriptor into a Message.
// Only the subset this codec handles is accepted: uint64, string and bytes
// scalars, and repeated string.
func FromDescriptor(md protoreflect.MessageDescriptor) (*Message, error) {
	msg := &Message{Name: string(md.FullName())}
	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsMap() {
			return nil, fmt.Errorf("message %s: field %s: maps are not supported", msg.Name, fd.Name())
		}
		if oneof := fd.ContainingOneof(); oneof != nil && !oneof.IsSynthetic() {
			return nil, fmt.Errorf("message %s: field %s: oneofs are not supported", msg.Name, fd.Name())
		}

		var typ PrimitiveType
		switch fd.Kind() {
		case protoreflect.Uint64Kind:
			typ = TypeUint64
		case protoreflect.StringKind:
			typ = TypeString
		case protoreflect.BytesKind:
			typ = TypeBytes
		default:
			return nil, fmt.Errorf("message %s: field %s: unsupported kind %s", msg.Name, fd.Name(), fd.Kind())
		}

		label := LabelOptional
		if fd.Cardinality() == protoreflect.Repeated {
			label = LabelRepeated
		}
		msg.Fields = append(msg.Fields, &Field{
			Name:     string(fd.Name()),
			JsonName: fd.JSONName(),
			Number:   int32(fd.Number()),
			Label:    label,
			Type:     typ,
		})
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// ToDescriptorProto renders the message as a protobuf-go DescriptorProto,
// with fields in declaration order.
func ToDescriptorProto(m *Message) *descriptorpb.DescriptorProto {
	dp := &descriptorpb.DescriptorProto{
		Name: proto.String(m.ShortName()),
	}
	for _, f := range m.Fields {
		fdp := &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(f.Name),
			JsonName: proto.String(f.JsonName),
			Number:   proto.Int32(f.Number),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		}
		if f.IsRepeated() {
			fdp.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		}
		switch f.Type {
		case TypeUint64:
			fdp.Type = descriptorpb.FieldDescriptorProto_TYPE_UINT64.Enum()
		case TypeBytes:
			fdp.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		default:
			fdp.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		}
		dp.Field = append(dp.Field, fdp)
	}
	return dp
}

// ToFileDescriptorProto renders messages that share a package as a proto3
// FileDescriptorProto.
func ToFileDescriptorProto(fileName string, msgs ...*Message) (*descriptorpb.FileDescriptorProto, error) {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(fileName),
		Syntax: proto.String("proto3"),
	}
	for i, m := range msgs {
		if i == 0 {
			fdp.Package = proto.String(m.Package())
		} else if m.Package() != fdp.GetPackage() {
			return nil, fmt.Errorf("message %s is not in package %s", m.Name, fdp.GetPackage())
		}
		fdp.MessageType = append(fdp.MessageType, ToDescriptorProto(m))
	}
	return fdp, nil
}
