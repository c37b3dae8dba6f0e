package config

import (
	"log"

	"github.com/Miraku17/PowerSystems-sub006/models"

	"golang.org/x/crypto/bcrypt"
)

func SeedPermissions() {
	perms := []models.Permission{
		{Module: "engine_management", Action: "view", Label: "View Engines"},
		{Module: "engine_management", Action: "create", Label: "Add Engine"},
		{Module: "engine_management", Action: "edit", Label: "Edit Engine"},
		{Module: "pump_management", Action: "view", Label: "View Pumps"},
		{Module: "pump_management", Action: "create", Label: "Add Pump"},
		{Module: "pump_management", Action: "edit", Label: "Edit Pump"},
		{Module: "customer_management", Action: "view", Label: "View Customers"},
		{Module: "customer_management", Action: "create", Label: "Add Customer"},
		{Module: "customer_management", Action: "edit", Label: "Edit Customer"},

		{Module: "job_orders", Action: "view", Label: "View Job Orders"},
		{Module: "job_orders", Action: "create", Label: "Create Job Order"},
		{Module: "job_orders", Action: "edit", Label: "Edit Job Order"},
		{Module: "time_sheets", Action: "view", Label: "View Time Sheets"},
		{Module: "time_sheets", Action: "create", Label: "File Time Sheet"},
		{Module: "time_sheets", Action: "edit", Label: "Edit Time Sheet"},
		{Module: "leave_management", Action: "view", Label: "View Leave Requests"},
		{Module: "leave_management", Action: "create", Label: "File Leave Request"},
		{Module: "leave_management", Action: "edit", Label: "Edit Leave Request"},
		{Module: "service_reports", Action: "view", Label: "View Service Reports"},
		{Module: "service_reports", Action: "create", Label: "Create Service Report"},
		{Module: "service_reports", Action: "edit", Label: "Edit Service Report"},
		{Module: "knowledge_base", Action: "view", Label: "View Knowledge Base"},
		{Module: "knowledge_base", Action: "create", Label: "Write Article"},
		{Module: "knowledge_base", Action: "edit", Label: "Edit Article"},

		{Module: "user_management", Action: "view", Label: "View Users"},
		{Module: "user_management", Action: "create", Label: "Create User"},
		{Module: "user_management", Action: "edit", Label: "Manage Users & Positions"},

		{Module: "form_records", Action: "delete", Label: "Delete Form Records"},
		{Module: "form_records", Action: "restore", Label: "Restore Form Records"},
		{Module: "approvals", Action: "edit", Label: "Approve / Reject Forms"},
		{Module: "audit_logs", Action: "view", Label: "View Audit Trail"},
	}
	for _, p := range perms {
		var cnt int64
		DB.Model(&models.Permission{}).
			Where("module = ? AND action = ?", p.Module, p.Action).Count(&cnt)
		if cnt == 0 {
			DB.Create(&p)
		}
	}
}

func SeedPositions() {
	positions := []models.Position{
		{Name: "User", ApprovalLevel: 0},
		{Name: "Admin 1", ApprovalLevel: 1},
		{Name: "Admin 2", ApprovalLevel: 2},
		{Name: "Super Admin", ApprovalLevel: 2, IsOverride: true},
	}
	for _, pos := range positions {
		var cnt int64
		DB.Model(&models.Position{}).Where("name = ?", pos.Name).Count(&cnt)
		if cnt == 0 {
			DB.Create(&pos)
		}
	}

	grant("Super Admin", "", "", "global") // empty module = everything
	grant("Admin 1", "approvals", "edit", "branch")
	grant("Admin 1", "job_orders", "view", "branch")
	grant("Admin 1", "time_sheets", "view", "branch")
	grant("Admin 2", "approvals", "edit", "branch")
	grant("Admin 2", "job_orders", "view", "branch")
	grant("Admin 2", "time_sheets", "view", "branch")
	grant("Admin 2", "form_records", "delete", "global")
	grant("Admin 2", "form_records", "restore", "global")
	grant("User", "job_orders", "create", "global")
	grant("User", "time_sheets", "create", "global")
	grant("User", "leave_management", "create", "global")
	grant("User", "service_reports", "create", "global")
	grant("User", "knowledge_base", "view", "global")
}

func grant(positionName, module, action, scope string) {
	var pos models.Position
	if err := DB.Where("name = ?", positionName).First(&pos).Error; err != nil {
		return
	}

	var perms []models.Permission
	q := DB.Model(&models.Permission{})
	if module != "" {
		q = q.Where("module = ? AND action = ?", module, action)
	}
	if err := q.Find(&perms).Error; err != nil {
		return
	}

	for _, p := range perms {
		var cnt int64
		DB.Model(&models.PositionPermission{}).
			Where("position_id = ? AND permission_id = ?", pos.ID, p.ID).Count(&cnt)
		if cnt == 0 {
			DB.Create(&models.PositionPermission{
				PositionID:   pos.ID,
				PermissionID: p.ID,
				Scope:        scope,
			})
		}
	}
}

// SeedCounters makes sure the job-order counter row exists, starting it at
// the highest sequence already issued so restored databases keep counting.
func SeedCounters() {
	var cnt int64
	DB.Model(&models.FormCounter{}).Where("name = ?", models.CounterJobOrder).Count(&cnt)
	if cnt > 0 {
		return
	}

	var maxSeq int64
	DB.Raw(`SELECT COALESCE(MAX(jo_number_seq), 0) FROM job_order_requests`).Scan(&maxSeq)
	DB.Create(&models.FormCounter{Name: models.CounterJobOrder, CurrentValue: maxSeq})
}

// SeedDefaultAdmin creates the bootstrap super-admin account when the users
// table is empty.
func SeedDefaultAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	var pos models.Position
	if err := DB.Where("name = ?", "Super Admin").First(&pos).Error; err != nil {
		return
	}

	password := GetEnv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	admin := models.User{
		Username:     "superadmin",
		Email:        "admin@powersystems.local",
		FullName:     "System Administrator",
		PasswordHash: string(hash),
		Role:         "admin",
		PositionID:   &pos.ID,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("⚠️  Failed to seed default admin: %v", err)
	} else {
		log.Println("✅ Default super admin seeded (username: superadmin)")
	}
}
