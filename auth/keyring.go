// Package auth provides a high-level API for persisting and retrieving deploy credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"

	"github.com/tsumiki-site/tsumiki/constant"
)

const user = "deploy-token"

// SetToken persists the deploy endpoint bearer token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(constant.Tsumiki, user, token)
}

// GetToken retrieves the deploy endpoint bearer token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(constant.Tsumiki, user)
}

// DeleteToken removes the deploy endpoint bearer token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(constant.Tsumiki, user)
}
