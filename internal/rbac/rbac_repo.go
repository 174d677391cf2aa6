package rbac

import (
	"gorm.io/gorm"
)

type UserRole struct {
	UserID   string
	RoleName string
}

type RolePermission struct {
	RoleName string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles() ([]UserRole, error)
	GetRolePermissions() ([]RolePermission, error)
	GetRolesForUser(userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles() ([]UserRole, error) {
	var rows []UserRole
	err := r.db.
		Table("user_roles ur").
		Select("ur.user_id::text AS user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions() ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.
		Table("role_permissions rp").
		Select("roles.name AS role_name, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = rp.role_id").
		Joins("JOIN permissions ON permissions.id = rp.permission_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolesForUser(userID string) ([]string, error) {
	var names []string
	err := r.db.
		Table("user_roles ur").
		Select("roles.name").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Scan(&names).Error
	return names, err
}
