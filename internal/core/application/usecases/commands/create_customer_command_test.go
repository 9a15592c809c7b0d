package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(
		customerID, "Dana", "dana@example.com", "+15550000002", "hashed-secret")

	require.NoError(t, err)
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Equal(t, "Dana", cmd.Name())
	assert.Equal(t, "dana@example.com", cmd.Email())
	assert.Equal(t, "+15550000002", cmd.Phone())
	assert.Equal(t, "hashed-secret", cmd.PasswordHash())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCustomerCommand_MissingFields(t *testing.T) {
	testCases := []struct {
		name    string
		cname   string
		email   string
		phone   string
		hash    string
		wantErr error
	}{
		{
			name:    "empty name",
			email:   "dana@example.com",
			phone:   "+15550000002",
			hash:    "hashed-secret",
			wantErr: commands.ErrCustomerNameIsRequired,
		},
		{
			name:    "empty email",
			cname:   "Dana",
			phone:   "+15550000002",
			hash:    "hashed-secret",
			wantErr: commands.ErrEmailIsRequired,
		},
		{
			name:    "empty phone",
			cname:   "Dana",
			email:   "dana@example.com",
			hash:    "hashed-secret",
			wantErr: commands.ErrPhoneIsRequired,
		},
		{
			name:    "empty password hash",
			cname:   "Dana",
			email:   "dana@example.com",
			phone:   "+15550000002",
			wantErr: commands.ErrPasswordHashIsRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateCustomerCommand(
				kernel.NewUUID(), tc.cname, tc.email, tc.phone, tc.hash)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCreateCustomerCommand_CombinedErrors(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.UUID{}, "", "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "phone is required")
	assert.Contains(t, err.Error(), "password hash is required")
}

func TestCreateCustomerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCustomerCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
