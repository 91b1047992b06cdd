package registry

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/empowerchain/eventwire/schema"
)

// getAllProtoInfo uses DFS to fetch the file and everything it imports from
// ProtoDirectories, parsing each one. The result lists resolved paths in
// visit order.
func (r *Registry) getAllProtoInfo(protoFile string) ([]string, error) {
	visited := make(map[string]struct{}) // to make sure we don't end up in a loop
	result := make([]string, 0)

	var dfs func(protoFile string) error
	dfs = func(protoFile string) error {
		if _, ok := visited[protoFile]; ok {
			return nil
		}
		visited[protoFile] = struct{}{}
		result = append(result, protoFile)

		protoBytes, err := os.ReadFile(protoFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		parsedBody, err := parseProto(protoBytes)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", protoFile, err)
		}
		r.parsedProtoBody[protoFile] = parsedBody
		for _, importPath := range importLocations(parsedBody) {
			fullImportPath, err := r.findIfProtoExists(importPath)
			if err != nil {
				return err
			}
			if err = dfs(fullImportPath); err != nil {
				return err
			}
		}
		return nil
	}
	// run dfs on the input proto path
	protoPath, err := r.findIfProtoExists(protoFile)
	if err != nil {
		return nil, err
	}
	if err := dfs(protoPath); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Registry) findIfProtoExists(protoPath string) (string, error) {
	var (
		fullPath      string
		fullProtoPath string
		err           error
	)
	protoPath = strings.Trim(protoPath, `"`)
	for _, dir := range r.protoRoots() {
		fullPath = path.Join(dir, protoPath)
		// Check if the path exists
		var info os.FileInfo
		info, err = os.Stat(fullPath)
		if err == nil && !info.IsDir() {
			fullProtoPath = fullPath
			break
		}
	}
	if fullProtoPath == "" {
		return "", fmt.Errorf("path does not exist: %s %w", protoPath, err)
	}
	if !strings.HasSuffix(fullProtoPath, ".proto") {
		return "", fmt.Errorf("is not a .proto file: %s", fullProtoPath)
	}
	return fullProtoPath, nil
}

// protoFilesIn lists the .proto files below name when name resolves to a
// directory. The paths keep name as prefix so they resolve like imports do.
func (r *Registry) protoFilesIn(name string) ([]string, bool, error) {
	for _, root := range r.protoRoots() {
		full := path.Join(root, name)
		info, err := os.Stat(full)
		if err != nil || !info.IsDir() {
			continue
		}
		var files []string
		err = filepath.WalkDir(full, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(p, ".proto") {
				return nil
			}
			rel, err := filepath.Rel(full, p)
			if err != nil {
				return err
			}
			files = append(files, path.Join(name, filepath.ToSlash(rel)))
			return nil
		})
		return files, true, err
	}
	return nil, false, nil
}

func (r *Registry) protoRoots() []string {
	if len(r.ProtoDirectories) == 0 {
		return []string{""}
	}
	return r.ProtoDirectories
}

func parseProto(content []byte) (*protoparserparser.Proto, error) {
	return protoparser.Parse(bytes.NewBuffer(content))
}

// importLocations lists the imports of a parsed file. Well-known google
// imports are left out since no supported field type can refer to them.
func importLocations(parsed *protoparserparser.Proto) []string {
	var locations []string
	for _, body := range parsed.ProtoBody {
		imp, ok := body.(*protoparserparser.Import)
		if !ok {
			continue
		}
		location := strings.Trim(imp.Location, `"'`)
		if strings.HasPrefix(location, "google/protobuf/") {
			continue
		}
		locations = append(locations, location)
	}
	return locations
}

// buildProtoFile converts a parsed file into descriptors
func buildProtoFile(filePath string, parsed *protoparserparser.Proto) (*schema.ProtoFile, error) {
	if parsed == nil {
		return nil, fmt.Errorf("file %s was not parsed", filePath)
	}
	protoFile := &schema.ProtoFile{
		Name:     filePath,
		Syntax:   "proto2", // protoc's default when no syntax statement is present
		Imports:  []string{},
		Messages: []*schema.Message{},
	}
	if parsed.Syntax != nil {
		protoFile.Syntax = strings.Trim(parsed.Syntax.ProtobufVersion, `"'`)
	}

	var messages []*protoparserparser.Message
	for _, body := range parsed.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Package:
			protoFile.Package = b.Name
		case *protoparserparser.Import:
			protoFile.Imports = append(protoFile.Imports, strings.Trim(b.Location, `"'`))
		case *protoparserparser.Message:
			messages = append(messages, b)
		}
	}

	for _, m := range messages {
		msg, err := buildMessage(getFullName(protoFile.Package, m.MessageName), protoFile.Syntax, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		protoFile.Messages = append(protoFile.Messages, msg)
	}
	return protoFile, nil
}

// buildMessage converts one top level message. Only uint64, string and bytes
// scalars and repeated string are accepted, all with implicit presence.
func buildMessage(fullName, syntax string, m *protoparserparser.Message) (*schema.Message, error) {
	msg := &schema.Message{Name: fullName}
	for _, body := range m.MessageBody {
		switch b := body.(type) {
		case *protoparserparser.Field:
			field, err := buildField(fullName, syntax, b)
			if err != nil {
				return nil, err
			}
			msg.Fields = append(msg.Fields, field)
		case *protoparserparser.MapField:
			return nil, fmt.Errorf("message %s: map field %s is not supported", fullName, b.MapName)
		case *protoparserparser.Oneof:
			return nil, fmt.Errorf("message %s: oneof %s is not supported", fullName, b.OneofName)
		case *protoparserparser.Message:
			return nil, fmt.Errorf("message %s: nested message %s is not supported", fullName, b.MessageName)
		case *protoparserparser.Enum:
			return nil, fmt.Errorf("message %s: nested enum %s is not supported", fullName, b.EnumName)
		}
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildField(messageName, syntax string, f *protoparserparser.Field) (*schema.Field, error) {
	// Defaults are omitted on the wire, so fields that track presence or
	// carry a custom default cannot be encoded like protoc does.
	switch {
	case f.IsRequired:
		return nil, fmt.Errorf("message %s: field %s: required fields are not supported", messageName, f.FieldName)
	case f.IsOptional:
		return nil, fmt.Errorf("message %s: field %s: optional fields with explicit presence are not supported", messageName, f.FieldName)
	case !f.IsRepeated && syntax != "proto3":
		return nil, fmt.Errorf("message %s: field %s: %s singular fields are not supported", messageName, f.FieldName, syntax)
	}
	for _, opt := range f.FieldOptions {
		if opt.OptionName == "default" {
			return nil, fmt.Errorf("message %s: field %s: default values are not supported", messageName, f.FieldName)
		}
	}

	number, err := strconv.ParseInt(f.FieldNumber, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("message %s: field %s: bad number %q: %w", messageName, f.FieldName, f.FieldNumber, err)
	}

	var typ schema.PrimitiveType
	switch f.Type {
	case "uint64":
		typ = schema.TypeUint64
	case "string":
		typ = schema.TypeString
	case "bytes":
		typ = schema.TypeBytes
	default:
		return nil, fmt.Errorf("message %s: field %s: unsupported type %s", messageName, f.FieldName, f.Type)
	}

	label := schema.LabelOptional
	if f.IsRepeated {
		label = schema.LabelRepeated
	}
	field := schema.NewField(int32(number), f.FieldName, label, typ)
	for _, opt := range f.FieldOptions {
		if opt.OptionName == "json_name" {
			field.JsonName = strings.Trim(opt.Constant, `"'`)
		}
	}
	return field, nil
}

func getFullName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
