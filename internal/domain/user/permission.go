package user

type Permission string

const (
	// Employee records
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Allowances, bonuses and kasbon
	PermissionCompensationView   Permission = "compensation.view"
	PermissionCompensationManage Permission = "compensation.manage"
	PermissionBonusApprove       Permission = "bonus.approve"

	// Payroll
	PermissionPayrollView     Permission = "payroll.view"
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollSubmit   Permission = "payroll.submit"
	PermissionPayrollApprove  Permission = "payroll.approve"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionCompensationView,
		PermissionCompensationManage,
		PermissionBonusApprove,
		PermissionPayrollView,
		PermissionPayrollGenerate,
		PermissionPayrollSubmit,
		PermissionPayrollApprove,
	},
	RoleManager: {
		// Manager runs day-to-day HR but cannot approve money going out
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionCompensationView,
		PermissionCompensationManage,
		PermissionPayrollView,
		PermissionPayrollGenerate,
		PermissionPayrollSubmit,
	},
	RoleEmployee: {
		// Employee has no back-office access
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
