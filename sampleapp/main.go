package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/empowerchain/eventwire"
	"github.com/empowerchain/eventwire/codec"
	"github.com/empowerchain/eventwire/config/logger"
	"github.com/empowerchain/eventwire/events"
	"github.com/empowerchain/eventwire/stream"
)

func main() {
	logger.Configure(logger.DefaultConfig)

	fmt.Println("🚀 Eventwire Sample App - plasticcredit events on the wire")
	fmt.Println(strings.Repeat("=", 70))

	// The lifecycle of one batch of credits
	issuerID := uint64(1)
	projectID := uint64(12)
	denom := "PTEST/00001"
	lifecycle := []struct {
		codec codec.Codec
		msg   any
	}{
		{events.CreateIssuer, &events.EventCreateIssuer{
			Creator:  "empower1creator",
			IssuerId: issuerID,
			Name:     "Empower",
		}},
		{events.CreateCreditType, &events.EventCreateCreditType{
			Creator:      "empower1creator",
			Abbreviation: "PTEST",
			IssuerId:     issuerID,
			Name:         "Plastic test credits",
		}},
		{events.ProjectApproved, &events.EventProjectApproved{
			ProjectId:                         projectID,
			ApprovedForCreditTypeAbbreviation: "PTEST",
			ApprovingIssuerId:                 issuerID,
			ApprovedBy:                        "empower1issuer",
		}},
		{events.IssuedCredits, &events.EventIssuedCredits{
			IssuerId:               issuerID,
			ProjectId:              projectID,
			CreditTypeAbbreviation: "PTEST",
			Denom:                  denom,
			Amount:                 1000,
			IssuerAddress:          "empower1issuer",
			MetadataUris:           []string{"ipfs://batch-1", "ipfs://batch-1-photos"},
		}},
		{events.TransferCredits, &events.EventTransferCredits{
			Sender:    "empower1issuer",
			Recipient: "empower1buyer",
			Denom:     denom,
			Amount:    250,
		}},
		{events.RetiredCredits, &events.EventRetiredCredits{
			Owner:  "empower1buyer",
			Denom:  denom,
			Amount: 100,
		}},
	}

	// 1. Typed encoding
	fmt.Println("\n📦 Typed encoding:")
	for _, e := range lifecycle {
		data, err := e.codec.Marshal(e.msg)
		if err != nil {
			logrus.Fatalf("Failed to encode %s: %v", e.codec.FullName(), err)
		}
		fmt.Printf("  %-42s %3d bytes  %x\n", e.codec.Descriptor().ShortName(), len(data), data)
	}

	// 2. Stream the whole lifecycle through a compressed stream
	fmt.Println("\n🌊 Event stream:")
	var buf bytes.Buffer
	w, err := stream.NewWriter(&buf, stream.Options{Compress: true})
	if err != nil {
		logrus.Fatalf("Failed to open stream: %v", err)
	}
	for _, e := range lifecycle {
		if err := w.WriteEvent(e.codec, e.msg); err != nil {
			logrus.Fatalf("Failed to write %s: %v", e.codec.FullName(), err)
		}
	}
	if err := w.Close(); err != nil {
		logrus.Fatalf("Failed to close stream: %v", err)
	}
	fmt.Printf("  wrote %d frames, %s before and %d bytes after compression\n",
		w.Stats().Frames, w.Stats().Bytes.HumanReadable(), buf.Len())

	r, err := stream.NewReader(&buf, stream.Options{Compress: true})
	if err != nil {
		logrus.Fatalf("Failed to read stream: %v", err)
	}
	for {
		c, m, err := r.NextEvent(events.Lookup)
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.Fatalf("Failed to read event: %v", err)
		}
		fmt.Printf("  %-42s %+v\n", c.Descriptor().ShortName(), m)
	}

	// 3. Partial hydration
	fmt.Println("\n🧩 Partial hydration:")
	amount := uint64(42)
	partial := &events.EventTransferCreditsPartial{Denom: &denom, Amount: &amount}
	fmt.Printf("  %+v\n", *events.TransferCredits.MergeFrom(partial))

	// 4. Schema-aware dynamic API
	fmt.Println("\n🔍 Dynamic decoding:")
	ew := eventwire.New(nil)
	data := events.IssuedCredits.Encode(lifecycle[3].msg.(*events.EventIssuedCredits))
	value, err := ew.Parse(data, "EventIssuedCredits")
	if err != nil {
		logrus.Fatalf("Failed to parse: %v", err)
	}
	msg, _ := ew.Describe("EventIssuedCredits")
	for _, f := range msg.SortedFields() {
		fmt.Printf("  %2d %-26s %v\n", f.Number, f.Name, value[f.Name])
	}

	// Unknown fields from a newer schema are skipped
	data = append(data, 0x50, 0x01)
	if _, err := ew.Parse(data, "EventIssuedCredits"); err != nil {
		logrus.Fatalf("Failed to parse with unknown field: %v", err)
	}
	fmt.Println("  ✅ payload with an unknown field 10 decoded fine")

	// Truncated payloads are rejected
	if _, err := ew.Parse(data[:len(data)-4], "EventIssuedCredits"); err != nil {
		fmt.Printf("  ❌ truncated payload: %v\n", err)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🎉 Done")
}
