package service

// DeletePolicy picks which authorization path guards soft delete for a
// table. Most form tables use the position permission (form_records.delete);
// a few older ones still use the flat admin-role check and are kept that
// way on purpose.
type DeletePolicy int

const (
	DeleteByPermission DeletePolicy = iota
	DeleteByLegacyRole
)

// FormType describes one soft-deletable form table.
type FormType struct {
	Key          string
	Table        string
	Module       string // permission module for view/create/edit
	HasApproval  bool   // two-level approval workflow
	HasSignatory bool   // noted_by / approved_by flags
	DeletePolicy DeletePolicy
}

var formTypes = map[string]FormType{
	"job-order-request": {
		Key: "job-order-request", Table: "job_order_requests",
		Module: "job_orders", HasApproval: true,
	},
	"daily-time-sheet": {
		Key: "daily-time-sheet", Table: "daily_time_sheets",
		Module: "time_sheets", HasApproval: true, HasSignatory: true,
	},
	"leave-request": {
		Key: "leave-request", Table: "leave_requests",
		Module: "leave_management",
	},
	"engine-service-report": {
		Key: "engine-service-report", Table: "engine_service_reports",
		Module: "service_reports", HasSignatory: true,
	},
	"pump-service-report": {
		Key: "pump-service-report", Table: "pump_service_reports",
		Module: "service_reports", HasSignatory: true,
	},
	"engine-commissioning-report": {
		Key: "engine-commissioning-report", Table: "engine_commissioning_reports",
		Module: "service_reports", HasSignatory: true, DeletePolicy: DeleteByLegacyRole,
	},
	"pump-teardown-report": {
		Key: "pump-teardown-report", Table: "pump_teardown_reports",
		Module: "service_reports", HasSignatory: true, DeletePolicy: DeleteByLegacyRole,
	},
	"kb-article": {
		Key: "kb-article", Table: "kb_articles",
		Module: "knowledge_base", DeletePolicy: DeleteByLegacyRole,
	},
}

// signatoryTables is the closed allow-list for the signatory toggle.
// Anything not listed here is rejected outright.
var signatoryTables = map[string]bool{
	"daily_time_sheets":            true,
	"engine_service_reports":       true,
	"pump_service_reports":         true,
	"engine_commissioning_reports": true,
	"pump_teardown_reports":        true,
}

func LookupFormType(key string) (FormType, bool) {
	ft, ok := formTypes[key]
	return ft, ok
}

func SignatoryTableAllowed(table string) bool {
	return signatoryTables[table]
}
