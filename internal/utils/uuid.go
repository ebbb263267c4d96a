package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace ids. Time-ordered v7 ids are preferred so that
// ids sort by creation time in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
