package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/empowerchain/eventwire/schema"
)

// Registry stores message descriptors by fully qualified name. We look
// them up when we need to parse or marshal a message by name.
// It is safe for concurrent use.
type Registry struct {
	// ProtoDirectories are the roots .proto files and their imports are
	// resolved against, in order.
	ProtoDirectories []string

	mu              sync.RWMutex
	files           map[string]*schema.ProtoFile // resolved path -> file
	messages        map[string]*schema.Message   // fully qualified name -> message
	parsedProtoBody map[string]*protoparserparser.Proto
}

func NewRegistry(protoDirectories []string) *Registry {
	return &Registry{
		ProtoDirectories: protoDirectories,
		files:            make(map[string]*schema.ProtoFile),
		messages:         make(map[string]*schema.Message),
		parsedProtoBody:  make(map[string]*protoparserparser.Proto),
	}
}

// Register adds descriptors directly. Registering a name twice is only
// allowed when both descriptors describe the same wire layout.
func (r *Registry) Register(msgs ...*schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(msgs)
}

func (r *Registry) register(msgs []*schema.Message) error {
	batch := make(map[string]*schema.Message, len(msgs))
	for _, msg := range msgs {
		if err := msg.Validate(); err != nil {
			return err
		}
		existing, ok := batch[msg.Name]
		if !ok {
			existing, ok = r.messages[msg.Name]
		}
		if ok && !existing.Equal(msg) {
			return fmt.Errorf("message %s already registered with a different layout", msg.Name)
		}
		batch[msg.Name] = msg
	}
	for _, msg := range msgs {
		r.messages[msg.Name] = msg
		logrus.WithField("message", msg.Name).Debug("Registered message")
	}
	return nil
}

// LoadSchema resolves protoFile against ProtoDirectories, parses it along
// with everything it imports, and registers every message found.
// A directory loads every .proto file below it.
func (r *Registry) LoadSchema(protoFile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	protoFiles, isDir, err := r.protoFilesIn(protoFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", protoFile, err)
	}
	if !isDir {
		protoFiles = []string{protoFile}
	} else if len(protoFiles) == 0 {
		return fmt.Errorf("failed to load %s: no .proto files in directory", protoFile)
	}

	var paths []string
	for _, f := range protoFiles {
		deps, err := r.getAllProtoInfo(f)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", protoFile, err)
		}
		paths = append(paths, deps...)
	}
	return r.buildFiles(lo.Uniq(paths))
}

// LoadSchemaBytes parses a single .proto file held in memory. Imports are
// resolved against ProtoDirectories.
func (r *Registry) LoadSchemaBytes(name string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	parsed, err := parseProto(content)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	r.parsedProtoBody[name] = parsed

	paths := []string{name}
	for _, imp := range importLocations(parsed) {
		deps, err := r.getAllProtoInfo(imp)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		paths = append(paths, deps...)
	}
	return r.buildFiles(paths)
}

// buildFiles converts parsed files into descriptors. Every message of every
// file is checked before any is registered.
func (r *Registry) buildFiles(paths []string) error {
	var files []*schema.ProtoFile
	var msgs []*schema.Message
	for _, path := range paths {
		file, err := buildProtoFile(path, r.parsedProtoBody[path])
		if err != nil {
			return err
		}
		files = append(files, file)
		msgs = append(msgs, file.Messages...)
	}
	if err := r.register(msgs); err != nil {
		return err
	}
	for _, file := range files {
		r.files[file.Name] = file
		logrus.WithFields(logrus.Fields{
			"file":     file.Name,
			"package":  file.Package,
			"messages": len(file.Messages),
		}).Debug("Loaded proto file")
	}
	return nil
}

// GetMessage retrieves a message by fully qualified name, by type URL, or
// by short name when that is unambiguous.
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimPrefix(name, "/")
	if msg, exists := r.messages[name]; exists {
		return msg, nil
	}

	// Try without package prefix
	matches := lo.Filter(lo.Values(r.messages), func(msg *schema.Message, _ int) bool {
		return msg.ShortName() == name
	})
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("message not found: %s", name)
	case 1:
		return matches[0], nil
	default:
		names := lo.Map(matches, func(msg *schema.Message, _ int) string { return msg.Name })
		sort.Strings(names)
		return nil, fmt.Errorf("message name %s is ambiguous: %s", name, strings.Join(names, ", "))
	}
}

// ListMessages returns all registered message names, sorted
func (r *Registry) ListMessages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.messages)
	sort.Strings(names)
	return names
}

// Files returns the loaded proto files, sorted by path
func (r *Registry) Files() []*schema.ProtoFile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := lo.Values(r.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}
