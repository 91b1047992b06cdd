package events

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/empowerchain/eventwire/codec"
	"github.com/empowerchain/eventwire/schema"
)

// ProtoFileName is the import path of the embedded event definitions
const ProtoFileName = "empowerchain/plasticcredit/events.proto"

// Proto holds the .proto rendition of every event in this package
//
//go:embed plasticcredit/events.proto
var Proto []byte

var catalog = map[string]codec.Codec{}

func init() {
	for _, c := range []codec.Codec{
		CreateIssuer,
		UpdateIssuer,
		CreateApplicant,
		UpdateApplicant,
		CreateCreditType,
		UpdateCreditType,
		CreateProject,
		UpdateProject,
		ProjectApproved,
		ProjectRejected,
		ProjectSuspended,
		IssuedCredits,
		TransferCredits,
		RetiredCredits,
	} {
		catalog[c.FullName()] = c
	}
}

// Lookup finds an event codec by fully qualified name, by short name, or
// by type URL ("/empowerchain.plasticcredit.EventIssuedCredits").
func Lookup(name string) (codec.Codec, bool) {
	name = strings.TrimPrefix(name, "/")
	if c, ok := catalog[name]; ok {
		return c, true
	}
	c, ok := catalog[Package+"."+name]
	return c, ok
}

// Names returns the fully qualified names of all events, sorted
func Names() []string {
	names := lo.Keys(catalog)
	sort.Strings(names)
	return names
}

// Descriptors returns the descriptors of all events, sorted by name
func Descriptors() []*schema.Message {
	return lo.Map(Names(), func(name string, _ int) *schema.Message {
		return catalog[name].Descriptor()
	})
}

// TypeURL returns the type URL used to tag an event in a stream envelope
func TypeURL(fullName string) string {
	return "/" + fullName
}
