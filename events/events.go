package events

import "github.com/empowerchain/eventwire/codec"

// Package is the protobuf package of every plasticcredit event
const Package = "empowerchain.plasticcredit"

// EventCreateIssuer is emitted when a new issuer is created
type EventCreateIssuer struct {
	IssuerId    uint64 `json:"issuer_id" yaml:"issuer_id"`
	Creator     string `json:"creator" yaml:"creator"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Admin       string `json:"admin" yaml:"admin"`
}

// EventCreateIssuerPartial is EventCreateIssuer with every field optional
type EventCreateIssuerPartial struct {
	IssuerId    *uint64 `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	Creator     *string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Admin       *string `json:"admin,omitempty" yaml:"admin,omitempty"`
}

// EventUpdateIssuer is emitted when an issuer is updated
type EventUpdateIssuer struct {
	IssuerId    uint64 `json:"issuer_id" yaml:"issuer_id"`
	Creator     string `json:"creator" yaml:"creator"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Admin       string `json:"admin" yaml:"admin"`
}

// EventUpdateIssuerPartial is EventUpdateIssuer with every field optional
type EventUpdateIssuerPartial struct {
	IssuerId    *uint64 `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	Creator     *string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Admin       *string `json:"admin,omitempty" yaml:"admin,omitempty"`
}

// EventCreateApplicant is emitted when a new applicant is created
type EventCreateApplicant struct {
	ApplicantId uint64 `json:"applicant_id" yaml:"applicant_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Admin       string `json:"admin" yaml:"admin"`
}

// EventCreateApplicantPartial is EventCreateApplicant with every field optional
type EventCreateApplicantPartial struct {
	ApplicantId *uint64 `json:"applicant_id,omitempty" yaml:"applicant_id,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Admin       *string `json:"admin,omitempty" yaml:"admin,omitempty"`
}

// EventUpdateApplicant is emitted when an applicant is updated
type EventUpdateApplicant struct {
	ApplicantId uint64 `json:"applicant_id" yaml:"applicant_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Admin       string `json:"admin" yaml:"admin"`
	Updater     string `json:"updater" yaml:"updater"`
}

// EventUpdateApplicantPartial is EventUpdateApplicant with every field optional
type EventUpdateApplicantPartial struct {
	ApplicantId *uint64 `json:"applicant_id,omitempty" yaml:"applicant_id,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Admin       *string `json:"admin,omitempty" yaml:"admin,omitempty"`
	Updater     *string `json:"updater,omitempty" yaml:"updater,omitempty"`
}

// EventCreateCreditType is emitted when a new credit type is created
type EventCreateCreditType struct {
	Creator      string `json:"creator" yaml:"creator"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	IssuerId     uint64 `json:"issuer_id" yaml:"issuer_id"`
	Name         string `json:"name" yaml:"name"`
}

// EventCreateCreditTypePartial is EventCreateCreditType with every field optional
type EventCreateCreditTypePartial struct {
	Creator      *string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	IssuerId     *uint64 `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	Name         *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// EventUpdateCreditType is emitted when a credit type is updated
type EventUpdateCreditType struct {
	Updater      string `json:"updater" yaml:"updater"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	Name         string `json:"name" yaml:"name"`
}

// EventUpdateCreditTypePartial is EventUpdateCreditType with every field optional
type EventUpdateCreditTypePartial struct {
	Updater      *string `json:"updater,omitempty" yaml:"updater,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Name         *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// EventCreateProject is emitted when a new project is created
type EventCreateProject struct {
	Creator                string `json:"creator" yaml:"creator"`
	ApplicantId            uint64 `json:"applicant_id" yaml:"applicant_id"`
	CreditTypeAbbreviation string `json:"credit_type_abbreviation" yaml:"credit_type_abbreviation"`
	Name                   string `json:"name" yaml:"name"`
}

// EventCreateProjectPartial is EventCreateProject with every field optional
type EventCreateProjectPartial struct {
	Creator                *string `json:"creator,omitempty" yaml:"creator,omitempty"`
	ApplicantId            *uint64 `json:"applicant_id,omitempty" yaml:"applicant_id,omitempty"`
	CreditTypeAbbreviation *string `json:"credit_type_abbreviation,omitempty" yaml:"credit_type_abbreviation,omitempty"`
	Name                   *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// EventUpdateProject is emitted when a project is updated
type EventUpdateProject struct {
	Updater   string `json:"updater" yaml:"updater"`
	ProjectId uint64 `json:"project_id" yaml:"project_id"`
	Name      string `json:"name" yaml:"name"`
}

// EventUpdateProjectPartial is EventUpdateProject with every field optional
type EventUpdateProjectPartial struct {
	Updater   *string `json:"updater,omitempty" yaml:"updater,omitempty"`
	ProjectId *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// EventProjectApproved is emitted when an issuer approves a project
type EventProjectApproved struct {
	ProjectId                         uint64 `json:"project_id" yaml:"project_id"`
	ApprovedForCreditTypeAbbreviation string `json:"approved_for_credit_type_abbreviation" yaml:"approved_for_credit_type_abbreviation"`
	ApprovingIssuerId                 uint64 `json:"approving_issuer_id" yaml:"approving_issuer_id"`
	ApprovedBy                        string `json:"approved_by" yaml:"approved_by"`
}

// EventProjectApprovedPartial is EventProjectApproved with every field optional
type EventProjectApprovedPartial struct {
	ProjectId                         *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ApprovedForCreditTypeAbbreviation *string `json:"approved_for_credit_type_abbreviation,omitempty" yaml:"approved_for_credit_type_abbreviation,omitempty"`
	ApprovingIssuerId                 *uint64 `json:"approving_issuer_id,omitempty" yaml:"approving_issuer_id,omitempty"`
	ApprovedBy                        *string `json:"approved_by,omitempty" yaml:"approved_by,omitempty"`
}

// EventProjectRejected is emitted when an issuer rejects a project
type EventProjectRejected struct {
	ProjectId                         uint64 `json:"project_id" yaml:"project_id"`
	RejectedForCreditTypeAbbreviation string `json:"rejected_for_credit_type_abbreviation" yaml:"rejected_for_credit_type_abbreviation"`
	RejectingIssuerId                 uint64 `json:"rejecting_issuer_id" yaml:"rejecting_issuer_id"`
	RejectedBy                        string `json:"rejected_by" yaml:"rejected_by"`
}

// EventProjectRejectedPartial is EventProjectRejected with every field optional
type EventProjectRejectedPartial struct {
	ProjectId                         *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	RejectedForCreditTypeAbbreviation *string `json:"rejected_for_credit_type_abbreviation,omitempty" yaml:"rejected_for_credit_type_abbreviation,omitempty"`
	RejectingIssuerId                 *uint64 `json:"rejecting_issuer_id,omitempty" yaml:"rejecting_issuer_id,omitempty"`
	RejectedBy                        *string `json:"rejected_by,omitempty" yaml:"rejected_by,omitempty"`
}

// EventProjectSuspended is emitted when an issuer suspends a project
type EventProjectSuspended struct {
	ProjectId                          uint64 `json:"project_id" yaml:"project_id"`
	SuspendedForCreditTypeAbbreviation string `json:"suspended_for_credit_type_abbreviation" yaml:"suspended_for_credit_type_abbreviation"`
	SuspendingIssuerId                 uint64 `json:"suspending_issuer_id" yaml:"suspending_issuer_id"`
	SuspendedBy                        string `json:"suspended_by" yaml:"suspended_by"`
}

// EventProjectSuspendedPartial is EventProjectSuspended with every field optional
type EventProjectSuspendedPartial struct {
	ProjectId                          *uint64 `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	SuspendedForCreditTypeAbbreviation *string `json:"suspended_for_credit_type_abbreviation,omitempty" yaml:"suspended_for_credit_type_abbreviation,omitempty"`
	SuspendingIssuerId                 *uint64 `json:"suspending_issuer_id,omitempty" yaml:"suspending_issuer_id,omitempty"`
	SuspendedBy                        *string `json:"suspended_by,omitempty" yaml:"suspended_by,omitempty"`
}

// EventIssuedCredits is emitted when credits are issued to a project
type EventIssuedCredits struct {
	IssuerId               uint64   `json:"issuer_id" yaml:"issuer_id"`
	ProjectId              uint64   `json:"project_id" yaml:"project_id"`
	CreditTypeAbbreviation string   `json:"credit_type_abbreviation" yaml:"credit_type_abbreviation"`
	Denom                  string   `json:"denom" yaml:"denom"`
	Amount                 uint64   `json:"amount" yaml:"amount"`
	IssuerAddress          string   `json:"issuer_address" yaml:"issuer_address"`
	MetadataUris           []string `json:"metadata_uris" yaml:"metadata_uris"`
}

// EventIssuedCreditsPartial is EventIssuedCredits with every field optional
type EventIssuedCreditsPartial struct {
	IssuerId               *uint64  `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	ProjectId              *uint64  `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	CreditTypeAbbreviation *string  `json:"credit_type_abbreviation,omitempty" yaml:"credit_type_abbreviation,omitempty"`
	Denom                  *string  `json:"denom,omitempty" yaml:"denom,omitempty"`
	Amount                 *uint64  `json:"amount,omitempty" yaml:"amount,omitempty"`
	IssuerAddress          *string  `json:"issuer_address,omitempty" yaml:"issuer_address,omitempty"`
	MetadataUris           []string `json:"metadata_uris,omitempty" yaml:"metadata_uris,omitempty"`
}

// EventTransferCredits is emitted when credits change owner
type EventTransferCredits struct {
	Sender                 string `json:"sender" yaml:"sender"`
	Recipient              string `json:"recipient" yaml:"recipient"`
	Denom                  string `json:"denom" yaml:"denom"`
	Amount                 uint64 `json:"amount" yaml:"amount"`
	IssuerId               uint64 `json:"issuer_id" yaml:"issuer_id"`
	CreditTypeAbbreviation string `json:"credit_type_abbreviation" yaml:"credit_type_abbreviation"`
}

// EventTransferCreditsPartial is EventTransferCredits with every field optional
type EventTransferCreditsPartial struct {
	Sender                 *string `json:"sender,omitempty" yaml:"sender,omitempty"`
	Recipient              *string `json:"recipient,omitempty" yaml:"recipient,omitempty"`
	Denom                  *string `json:"denom,omitempty" yaml:"denom,omitempty"`
	Amount                 *uint64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	IssuerId               *uint64 `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	CreditTypeAbbreviation *string `json:"credit_type_abbreviation,omitempty" yaml:"credit_type_abbreviation,omitempty"`
}

// EventRetiredCredits is emitted when credits are retired
type EventRetiredCredits struct {
	Owner                  string `json:"owner" yaml:"owner"`
	Denom                  string `json:"denom" yaml:"denom"`
	Amount                 uint64 `json:"amount" yaml:"amount"`
	IssuerId               uint64 `json:"issuer_id" yaml:"issuer_id"`
	CreditTypeAbbreviation string `json:"credit_type_abbreviation" yaml:"credit_type_abbreviation"`
}

// EventRetiredCreditsPartial is EventRetiredCredits with every field optional
type EventRetiredCreditsPartial struct {
	Owner                  *string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Denom                  *string `json:"denom,omitempty" yaml:"denom,omitempty"`
	Amount                 *uint64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	IssuerId               *uint64 `json:"issuer_id,omitempty" yaml:"issuer_id,omitempty"`
	CreditTypeAbbreviation *string `json:"credit_type_abbreviation,omitempty" yaml:"credit_type_abbreviation,omitempty"`
}

// CreateIssuer is the codec binding for EventCreateIssuer
var CreateIssuer = codec.NewBinding(Package+".EventCreateIssuer",
	codec.Uint64(1, "issuer_id",
		func(m *EventCreateIssuer) *uint64 { return &m.IssuerId },
		func(p *EventCreateIssuerPartial) *uint64 { return p.IssuerId }),
	codec.String(2, "creator",
		func(m *EventCreateIssuer) *string { return &m.Creator },
		func(p *EventCreateIssuerPartial) *string { return p.Creator }),
	codec.String(3, "name",
		func(m *EventCreateIssuer) *string { return &m.Name },
		func(p *EventCreateIssuerPartial) *string { return p.Name }),
	codec.String(4, "description",
		func(m *EventCreateIssuer) *string { return &m.Description },
		func(p *EventCreateIssuerPartial) *string { return p.Description }),
	codec.String(5, "admin",
		func(m *EventCreateIssuer) *string { return &m.Admin },
		func(p *EventCreateIssuerPartial) *string { return p.Admin }),
)

// UpdateIssuer is the codec binding for EventUpdateIssuer
var UpdateIssuer = codec.NewBinding(Package+".EventUpdateIssuer",
	codec.Uint64(1, "issuer_id",
		func(m *EventUpdateIssuer) *uint64 { return &m.IssuerId },
		func(p *EventUpdateIssuerPartial) *uint64 { return p.IssuerId }),
	codec.String(2, "creator",
		func(m *EventUpdateIssuer) *string { return &m.Creator },
		func(p *EventUpdateIssuerPartial) *string { return p.Creator }),
	codec.String(3, "name",
		func(m *EventUpdateIssuer) *string { return &m.Name },
		func(p *EventUpdateIssuerPartial) *string { return p.Name }),
	codec.String(4, "description",
		func(m *EventUpdateIssuer) *string { return &m.Description },
		func(p *EventUpdateIssuerPartial) *string { return p.Description }),
	codec.String(5, "admin",
		func(m *EventUpdateIssuer) *string { return &m.Admin },
		func(p *EventUpdateIssuerPartial) *string { return p.Admin }),
)

// CreateApplicant is the codec binding for EventCreateApplicant
var CreateApplicant = codec.NewBinding(Package+".EventCreateApplicant",
	codec.Uint64(1, "applicant_id",
		func(m *EventCreateApplicant) *uint64 { return &m.ApplicantId },
		func(p *EventCreateApplicantPartial) *uint64 { return p.ApplicantId }),
	codec.String(2, "name",
		func(m *EventCreateApplicant) *string { return &m.Name },
		func(p *EventCreateApplicantPartial) *string { return p.Name }),
	codec.String(3, "description",
		func(m *EventCreateApplicant) *string { return &m.Description },
		func(p *EventCreateApplicantPartial) *string { return p.Description }),
	codec.String(4, "admin",
		func(m *EventCreateApplicant) *string { return &m.Admin },
		func(p *EventCreateApplicantPartial) *string { return p.Admin }),
)

// UpdateApplicant is the codec binding for EventUpdateApplicant
var UpdateApplicant = codec.NewBinding(Package+".EventUpdateApplicant",
	codec.Uint64(1, "applicant_id",
		func(m *EventUpdateApplicant) *uint64 { return &m.ApplicantId },
		func(p *EventUpdateApplicantPartial) *uint64 { return p.ApplicantId }),
	codec.String(2, "name",
		func(m *EventUpdateApplicant) *string { return &m.Name },
		func(p *EventUpdateApplicantPartial) *string { return p.Name }),
	codec.String(3, "description",
		func(m *EventUpdateApplicant) *string { return &m.Description },
		func(p *EventUpdateApplicantPartial) *string { return p.Description }),
	codec.String(4, "admin",
		func(m *EventUpdateApplicant) *string { return &m.Admin },
		func(p *EventUpdateApplicantPartial) *string { return p.Admin }),
	codec.String(5, "updater",
		func(m *EventUpdateApplicant) *string { return &m.Updater },
		func(p *EventUpdateApplicantPartial) *string { return p.Updater }),
)

// CreateCreditType is the codec binding for EventCreateCreditType
var CreateCreditType = codec.NewBinding(Package+".EventCreateCreditType",
	codec.String(1, "creator",
		func(m *EventCreateCreditType) *string { return &m.Creator },
		func(p *EventCreateCreditTypePartial) *string { return p.Creator }),
	codec.String(2, "abbreviation",
		func(m *EventCreateCreditType) *string { return &m.Abbreviation },
		func(p *EventCreateCreditTypePartial) *string { return p.Abbreviation }),
	codec.Uint64(3, "issuer_id",
		func(m *EventCreateCreditType) *uint64 { return &m.IssuerId },
		func(p *EventCreateCreditTypePartial) *uint64 { return p.IssuerId }),
	codec.String(4, "name",
		func(m *EventCreateCreditType) *string { return &m.Name },
		func(p *EventCreateCreditTypePartial) *string { return p.Name }),
)

// UpdateCreditType is the codec binding for EventUpdateCreditType
var UpdateCreditType = codec.NewBinding(Package+".EventUpdateCreditType",
	codec.String(1, "updater",
		func(m *EventUpdateCreditType) *string { return &m.Updater },
		func(p *EventUpdateCreditTypePartial) *string { return p.Updater }),
	codec.String(2, "abbreviation",
		func(m *EventUpdateCreditType) *string { return &m.Abbreviation },
		func(p *EventUpdateCreditTypePartial) *string { return p.Abbreviation }),
	codec.String(3, "name",
		func(m *EventUpdateCreditType) *string { return &m.Name },
		func(p *EventUpdateCreditTypePartial) *string { return p.Name }),
)

// CreateProject is the codec binding for EventCreateProject
var CreateProject = codec.NewBinding(Package+".EventCreateProject",
	codec.String(1, "creator",
		func(m *EventCreateProject) *string { return &m.Creator },
		func(p *EventCreateProjectPartial) *string { return p.Creator }),
	codec.Uint64(2, "applicant_id",
		func(m *EventCreateProject) *uint64 { return &m.ApplicantId },
		func(p *EventCreateProjectPartial) *uint64 { return p.ApplicantId }),
	codec.String(3, "credit_type_abbreviation",
		func(m *EventCreateProject) *string { return &m.CreditTypeAbbreviation },
		func(p *EventCreateProjectPartial) *string { return p.CreditTypeAbbreviation }),
	codec.String(4, "name",
		func(m *EventCreateProject) *string { return &m.Name },
		func(p *EventCreateProjectPartial) *string { return p.Name }),
)

// UpdateProject is the codec binding for EventUpdateProject
var UpdateProject = codec.NewBinding(Package+".EventUpdateProject",
	codec.String(1, "updater",
		func(m *EventUpdateProject) *string { return &m.Updater },
		func(p *EventUpdateProjectPartial) *string { return p.Updater }),
	codec.Uint64(2, "project_id",
		func(m *EventUpdateProject) *uint64 { return &m.ProjectId },
		func(p *EventUpdateProjectPartial) *uint64 { return p.ProjectId }),
	codec.String(3, "name",
		func(m *EventUpdateProject) *string { return &m.Name },
		func(p *EventUpdateProjectPartial) *string { return p.Name }),
)

// ProjectApproved is the codec binding for EventProjectApproved
var ProjectApproved = codec.NewBinding(Package+".EventProjectApproved",
	codec.Uint64(1, "project_id",
		func(m *EventProjectApproved) *uint64 { return &m.ProjectId },
		func(p *EventProjectApprovedPartial) *uint64 { return p.ProjectId }),
	codec.String(2, "approved_for_credit_type_abbreviation",
		func(m *EventProjectApproved) *string { return &m.ApprovedForCreditTypeAbbreviation },
		func(p *EventProjectApprovedPartial) *string { return p.ApprovedForCreditTypeAbbreviation }),
	codec.Uint64(3, "approving_issuer_id",
		func(m *EventProjectApproved) *uint64 { return &m.ApprovingIssuerId },
		func(p *EventProjectApprovedPartial) *uint64 { return p.ApprovingIssuerId }),
	codec.String(4, "approved_by",
		func(m *EventProjectApproved) *string { return &m.ApprovedBy },
		func(p *EventProjectApprovedPartial) *string { return p.ApprovedBy }),
)

// ProjectRejected is the codec binding for EventProjectRejected
var ProjectRejected = codec.NewBinding(Package+".EventProjectRejected",
	codec.Uint64(1, "project_id",
		func(m *EventProjectRejected) *uint64 { return &m.ProjectId },
		func(p *EventProjectRejectedPartial) *uint64 { return p.ProjectId }),
	codec.String(2, "rejected_for_credit_type_abbreviation",
		func(m *EventProjectRejected) *string { return &m.RejectedForCreditTypeAbbreviation },
		func(p *EventProjectRejectedPartial) *string { return p.RejectedForCreditTypeAbbreviation }),
	codec.Uint64(3, "rejecting_issuer_id",
		func(m *EventProjectRejected) *uint64 { return &m.RejectingIssuerId },
		func(p *EventProjectRejectedPartial) *uint64 { return p.RejectingIssuerId }),
	codec.String(4, "rejected_by",
		func(m *EventProjectRejected) *string { return &m.RejectedBy },
		func(p *EventProjectRejectedPartial) *string { return p.RejectedBy }),
)

// ProjectSuspended is the codec binding for EventProjectSuspended
var ProjectSuspended = codec.NewBinding(Package+".EventProjectSuspended",
	codec.Uint64(1, "project_id",
		func(m *EventProjectSuspended) *uint64 { return &m.ProjectId },
		func(p *EventProjectSuspendedPartial) *uint64 { return p.ProjectId }),
	codec.String(2, "suspended_for_credit_type_abbreviation",
		func(m *EventProjectSuspended) *string { return &m.SuspendedForCreditTypeAbbreviation },
		func(p *EventProjectSuspendedPartial) *string { return p.SuspendedForCreditTypeAbbreviation }),
	codec.Uint64(3, "suspending_issuer_id",
		func(m *EventProjectSuspended) *uint64 { return &m.SuspendingIssuerId },
		func(p *EventProjectSuspendedPartial) *uint64 { return p.SuspendingIssuerId }),
	codec.String(4, "suspended_by",
		func(m *EventProjectSuspended) *string { return &m.SuspendedBy },
		func(p *EventProjectSuspendedPartial) *string { return p.SuspendedBy }),
)

// IssuedCredits is the codec binding for EventIssuedCredits
var IssuedCredits = codec.NewBinding(Package+".EventIssuedCredits",
	codec.Uint64(1, "issuer_id",
		func(m *EventIssuedCredits) *uint64 { return &m.IssuerId },
		func(p *EventIssuedCreditsPartial) *uint64 { return p.IssuerId }),
	codec.Uint64(2, "project_id",
		func(m *EventIssuedCredits) *uint64 { return &m.ProjectId },
		func(p *EventIssuedCreditsPartial) *uint64 { return p.ProjectId }),
	codec.String(3, "credit_type_abbreviation",
		func(m *EventIssuedCredits) *string { return &m.CreditTypeAbbreviation },
		func(p *EventIssuedCreditsPartial) *string { return p.CreditTypeAbbreviation }),
	codec.String(4, "denom",
		func(m *EventIssuedCredits) *string { return &m.Denom },
		func(p *EventIssuedCreditsPartial) *string { return p.Denom }),
	codec.Uint64(5, "amount",
		func(m *EventIssuedCredits) *uint64 { return &m.Amount },
		func(p *EventIssuedCreditsPartial) *uint64 { return p.Amount }),
	codec.String(6, "issuer_address",
		func(m *EventIssuedCredits) *string { return &m.IssuerAddress },
		func(p *EventIssuedCreditsPartial) *string { return p.IssuerAddress }),
	codec.RepeatedString(7, "metadata_uris",
		func(m *EventIssuedCredits) *[]string { return &m.MetadataUris },
		func(p *EventIssuedCreditsPartial) []string { return p.MetadataUris }),
)

// TransferCredits is the codec binding for EventTransferCredits
var TransferCredits = codec.NewBinding(Package+".EventTransferCredits",
	codec.String(1, "sender",
		func(m *EventTransferCredits) *string { return &m.Sender },
		func(p *EventTransferCreditsPartial) *string { return p.Sender }),
	codec.String(2, "recipient",
		func(m *EventTransferCredits) *string { return &m.Recipient },
		func(p *EventTransferCreditsPartial) *string { return p.Recipient }),
	codec.String(3, "denom",
		func(m *EventTransferCredits) *string { return &m.Denom },
		func(p *EventTransferCreditsPartial) *string { return p.Denom }),
	codec.Uint64(4, "amount",
		func(m *EventTransferCredits) *uint64 { return &m.Amount },
		func(p *EventTransferCreditsPartial) *uint64 { return p.Amount }),
	codec.Uint64(5, "issuer_id",
		func(m *EventTransferCredits) *uint64 { return &m.IssuerId },
		func(p *EventTransferCreditsPartial) *uint64 { return p.IssuerId }),
	codec.String(6, "credit_type_abbreviation",
		func(m *EventTransferCredits) *string { return &m.CreditTypeAbbreviation },
		func(p *EventTransferCreditsPartial) *string { return p.CreditTypeAbbreviation }),
)

// RetiredCredits is the codec binding for EventRetiredCredits
var RetiredCredits = codec.NewBinding(Package+".EventRetiredCredits",
	codec.String(1, "owner",
		func(m *EventRetiredCredits) *string { return &m.Owner },
		func(p *EventRetiredCreditsPartial) *string { return p.Owner }),
	codec.String(2, "denom",
		func(m *EventRetiredCredits) *string { return &m.Denom },
		func(p *EventRetiredCreditsPartial) *string { return p.Denom }),
	codec.Uint64(3, "amount",
		func(m *EventRetiredCredits) *uint64 { return &m.Amount },
		func(p *EventRetiredCreditsPartial) *uint64 { return p.Amount }),
	codec.Uint64(4, "issuer_id",
		func(m *EventRetiredCredits) *uint64 { return &m.IssuerId },
		func(p *EventRetiredCreditsPartial) *uint64 { return p.IssuerId }),
	codec.String(5, "credit_type_abbreviation",
		func(m *EventRetiredCredits) *string { return &m.CreditTypeAbbreviation },
		func(p *EventRetiredCreditsPartial) *string { return p.CreditTypeAbbreviation }),
)
