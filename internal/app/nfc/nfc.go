// Package nfc reads identity cards presented at handover. Real hardware
// support lives behind the Reader interface; the shipped build uses the
// simulator.
package nfc

import (
	"context"
	"time"
)

// Identity is the record read from a Turkish identity card
type Identity struct {
	TCNo       string `json:"tc_no"`
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	ValidUntil string `json:"valid_until"`
	SerialNo   string `json:"serial_no"`
}

// Reader reads an identity card. Read blocks until a card is presented or
// ctx is done.
type Reader interface {
	Read(ctx context.Context) (*Identity, error)
}

// readDelay mimics the time a physical card read takes
const readDelay = 2 * time.Second

// SimulatedReader returns a fixed identity after a short delay. It stands
// in for the hardware reader on platforms without NFC.
type SimulatedReader struct{}

// NewSimulatedReader creates a simulated reader
func NewSimulatedReader() *SimulatedReader {
	return &SimulatedReader{}
}

// Read waits the simulated card-read delay and returns the fixed record
func (r *SimulatedReader) Read(ctx context.Context) (*Identity, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(readDelay):
	}
	return &Identity{
		TCNo:       "12345678901",
		FullName:   "AHMET YILMAZ",
		BirthDate:  "01.01.1985",
		ValidUntil: "01.01.2030",
		SerialNo:   "A12B34567",
	}, nil
}
