// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// IsAvailable is indexed because the dispatch workflow scans for available
// riders on every run.
type RiderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	Vehicle     int
	IsAvailable bool `gorm:"index"`
	Version     int64
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		Vehicle:     int(aggregate.Vehicle()),
		IsAvailable: aggregate.IsAvailable(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.Name,
		dto.Phone,
		rider.VehicleKind(dto.Vehicle),
		dto.IsAvailable,
		dto.Version,
	)
}
