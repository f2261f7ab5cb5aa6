package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Ресурсы и действия политики доступа.
const (
	ResourceHelpRequests = "helprequests"

	ActionRead  = "read"
	ActionWrite = "write"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Authorizer проверяет права по ролям через casbin.
// Политика хранится в памяти и после конструктора не меняется.
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizer строит политику: пользователи читают заявки,
// администраторы их меняют и наследуют всё, что разрешено пользователям.
func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	policies := [][]string{
		{RoleUser, ResourceHelpRequests, ActionRead},
		{RoleAdmin, ResourceHelpRequests, ActionWrite},
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("add policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicy(RoleAdmin, RoleUser); err != nil {
		return nil, fmt.Errorf("add role inheritance: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// Allowed сообщает, разрешено ли хотя бы одной роли вызывающего действие action над resource.
func (a *Authorizer) Allowed(p Principal, resource, action string) (bool, error) {
	for _, role := range p.Roles {
		ok, err := a.enforcer.Enforce(role, resource, action)
		if err != nil {
			return false, fmt.Errorf("enforce %s %s/%s: %w", role, resource, action, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
