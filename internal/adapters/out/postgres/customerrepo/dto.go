// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence, delivery addresses included.
package customerrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The unique index on Email is the enforcement point for the
// one-account-per-email rule.
type CustomerDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string       `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	Addresses    []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents a persisted delivery address owned by a customer.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Street     string
	City       string
	PostalCode string
	Country    string
}

// TableName specifies the database table name for delivery addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts a customer domain aggregate to its database
// representation, addresses included.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	addresses := aggregate.Addresses()
	addressDTOs := make([]AddressDTO, 0, len(addresses))
	for _, addr := range addresses {
		addressDTOs = append(addressDTOs, AddressDTO{
			ID:         addr.ID().Bytes(),
			CustomerID: aggregate.ID().Bytes(),
			Street:     addr.Street(),
			City:       addr.City(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		})
	}

	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
		Addresses:    addressDTOs,
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addresses := make([]*customer.Address, 0, len(dto.Addresses))
	for _, addrDTO := range dto.Addresses {
		addrID, addrErr := kernel.UUIDFromBytes(addrDTO.ID[:])
		if addrErr != nil {
			return nil, addrErr
		}

		addr, addrErr := customer.RestoreAddress(
			addrID, addrDTO.Street, addrDTO.City, addrDTO.PostalCode, addrDTO.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		addresses = append(addresses, addr)
	}

	return customer.RestoreCustomer(
		id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, dto.CreatedAt, addresses)
}
