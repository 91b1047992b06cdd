package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/empowerchain/eventwire/events"
	"github.com/empowerchain/eventwire/schema"
)

func writeProto(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(nil)
	require.NotNil(t, registry)
	assert.Empty(t, registry.ListMessages())
	assert.Empty(t, registry.Files())
}

func TestLoadSchema_NonExistentPath(t *testing.T) {
	err := NewRegistry(nil).LoadSchema("/nonexistent/path.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestLoadSchema_NonProtoFile(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "notes.txt", "hello")

	err := NewRegistry([]string{dir}).LoadSchema("notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a .proto file")
}

func TestLoadSchema_SingleProtoFile(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "credits.proto", `syntax = "proto3";
package test.credits;

// Minted credits
message Minted {
  uint64 amount = 1;
  string denom = 2;
  bytes proof = 3;
  repeated string metadata_uris = 4 [json_name = "uris"];
  reserved 5;
}
`)

	registry := NewRegistry([]string{dir})
	require.NoError(t, registry.LoadSchema("credits.proto"))
	assert.Equal(t, []string{"test.credits.Minted"}, registry.ListMessages())

	files := registry.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "proto3", files[0].Syntax)
	assert.Equal(t, "test.credits", files[0].Package)

	msg, err := registry.GetMessage("Minted")
	require.NoError(t, err)
	assert.True(t, msg.Equal(&schema.Message{
		Name: "test.credits.Minted",
		Fields: []*schema.Field{
			schema.NewField(1, "amount", schema.LabelOptional, schema.TypeUint64),
			schema.NewField(2, "denom", schema.LabelOptional, schema.TypeString),
			schema.NewField(3, "proof", schema.LabelOptional, schema.TypeBytes),
			{Name: "metadata_uris", JsonName: "uris", Number: 4, Label: schema.LabelRepeated, Type: schema.TypeString},
		},
	}))
}

func TestLoadSchema_Imports(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "a/a.proto", `syntax = "proto3";
package test.a;
import "b/b.proto";
import "google/protobuf/timestamp.proto";
message A { string name = 1; }
`)
	writeProto(t, dir, "b/b.proto", `syntax = "proto3";
package test.b;
import "a/a.proto";
message B { uint64 id = 1; }
`)

	registry := NewRegistry([]string{t.TempDir(), dir})
	require.NoError(t, registry.LoadSchema("a/a.proto"))
	assert.Equal(t, []string{"test.a.A", "test.b.B"}, registry.ListMessages())
	assert.Len(t, registry.Files(), 2)
}

func TestLoadSchema_Directory(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "protos/a.proto", `syntax = "proto3";
package test.a;
message A { string name = 1; }
`)
	writeProto(t, dir, "protos/sub/b.proto", `syntax = "proto3";
package test.b;
import "protos/a.proto";
message B { uint64 id = 1; }
`)
	writeProto(t, dir, "protos/README.md", "not a proto")

	registry := NewRegistry([]string{dir})
	require.NoError(t, registry.LoadSchema("protos"))
	assert.Equal(t, []string{"test.a.A", "test.b.B"}, registry.ListMessages())
	assert.Len(t, registry.Files(), 2)

	// an absolute directory, imports still resolve against dir
	registry = NewRegistry([]string{"", dir})
	require.NoError(t, registry.LoadSchema(filepath.Join(dir, "protos", "sub")))
	assert.Equal(t, []string{"test.a.A", "test.b.B"}, registry.ListMessages())
}

func TestLoadSchema_DirectoryConflict(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "a.proto", "syntax = \"proto3\";\npackage p;\nmessage M { uint64 x = 1; }\n")
	writeProto(t, dir, "b.proto", "syntax = \"proto3\";\npackage p;\nmessage M { string y = 1; }\n")

	registry := NewRegistry([]string{dir})
	err := registry.LoadSchema(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p.M")
	assert.Empty(t, registry.ListMessages())
	assert.Empty(t, registry.Files())
}

func TestLoadSchema_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0o755))

	err := NewRegistry([]string{dir}).LoadSchema("empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .proto files")
}

func TestLoadSchema_MissingImport(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "a.proto", `syntax = "proto3";
import "missing.proto";
message A { string name = 1; }
`)

	err := NewRegistry([]string{dir}).LoadSchema("a.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.proto")
}

func TestLoadSchema_Unsupported(t *testing.T) {
	const proto3 = "syntax = \"proto3\";\npackage test;\nmessage Ok { string a = 1; }\n"
	const proto2 = "syntax = \"proto2\";\npackage test;\nmessage Ok { repeated string a = 1; }\n"
	tests := map[string]string{
		"int32":          proto3 + `message M { int32 count = 1; }`,
		"map":            proto3 + `message M { map<string, string> labels = 1; }`,
		"oneof":          proto3 + `message M { oneof kind { string a = 1; } }`,
		"nested":         proto3 + `message M { message N { string a = 1; } }`,
		"repeated_id":    proto3 + `message M { repeated uint64 ids = 1; }`,
		"duplicate":      proto3 + `message M { string a = 1; string b = 1; }`,
		"proto3_present": proto3 + `message M { optional uint64 x = 1; }`,
		"required":       proto2 + `message M { required string s = 2; }`,
		"default":        proto2 + `message M { optional uint64 x = 1 [default = 5]; }`,
		"proto2_present": proto2 + `message M { optional string s = 1; }`,
		"no_syntax":      "package test;\nmessage M { repeated string a = 1; string b = 2; }",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeProto(t, dir, "m.proto", content+"\n")

			registry := NewRegistry([]string{dir})
			require.Error(t, registry.LoadSchema("m.proto"))
			// Nothing from a failed file is registered
			assert.Empty(t, registry.ListMessages())
		})
	}
}

func TestLoadSchemaBytes_Proto2Repeated(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.LoadSchemaBytes("tags.proto", []byte(`syntax = "proto2";
package test;
message Tags { repeated string tags = 1; }
`)))
	msg, err := registry.GetMessage("test.Tags")
	require.NoError(t, err)
	assert.True(t, msg.Fields[0].IsRepeated())
}

func TestLoadSchemaBytes_Events(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.LoadSchemaBytes(events.ProtoFileName, events.Proto))
	assert.Equal(t, events.Names(), registry.ListMessages())

	for _, want := range events.Descriptors() {
		got, err := registry.GetMessage(want.Name)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "descriptor mismatch for %s", want.Name)
	}

	// Registering the same layouts again is allowed
	require.NoError(t, registry.Register(events.Descriptors()...))
}

func TestRegister(t *testing.T) {
	registry := NewRegistry(nil)
	a := &schema.Message{Name: "x.Thing", Fields: []*schema.Field{
		schema.NewField(1, "a", schema.LabelOptional, schema.TypeString),
	}}
	require.NoError(t, registry.Register(a))

	changed := &schema.Message{Name: "x.Thing", Fields: []*schema.Field{
		schema.NewField(1, "a", schema.LabelOptional, schema.TypeUint64),
	}}
	assert.Error(t, registry.Register(changed))

	assert.Error(t, registry.Register(&schema.Message{}))

	// conflicts inside one call are caught before anything is stored
	other := &schema.Message{Name: "x.Other", Fields: []*schema.Field{
		schema.NewField(1, "a", schema.LabelOptional, schema.TypeString),
	}}
	otherChanged := &schema.Message{Name: "x.Other", Fields: []*schema.Field{
		schema.NewField(1, "b", schema.LabelOptional, schema.TypeString),
	}}
	assert.Error(t, registry.Register(other, otherChanged))
	_, err := registry.GetMessage("x.Other")
	assert.Error(t, err)

	got, err := registry.GetMessage("/x.Thing")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestGetMessage(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register(
		&schema.Message{Name: "one.Event"},
		&schema.Message{Name: "two.Event"},
		&schema.Message{Name: "two.Other"},
	))

	_, err := registry.GetMessage("Event")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	msg, err := registry.GetMessage("Other")
	require.NoError(t, err)
	assert.Equal(t, "two.Other", msg.Name)

	_, err = registry.GetMessage("Missing")
	assert.Contains(t, err.Error(), "message not found")
}

func TestRegistry_Concurrent(t *testing.T) {
	registry := NewRegistry(nil)
	var g errgroup.Group
	for _, desc := range events.Descriptors() {
		desc := desc
		g.Go(func() error { return registry.Register(desc) })
		g.Go(func() error {
			registry.ListMessages()
			_, _ = registry.GetMessage(desc.Name)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, registry.ListMessages(), 14)
}
