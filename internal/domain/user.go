package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles conhecidos do núcleo do POS.
const (
	RoleAdministrator = "administrator"
	RoleWaiter        = "waiter"
)

type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Claims é o conteúdo do JWT emitido pelo gateway. POSToken carrega o token
// de acesso do núcleo do POS para repasse nas chamadas em nome do usuário.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	POSToken string `json:"pos_token"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdministrator() bool {
	return c.Role == RoleAdministrator
}
