package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motortrack/internal/domain"
)

func motorFixture() []domain.Motor {
	return []domain.Motor{
		{ID: 1, CompanyID: 1, MotorID: "NPM-PUMP-01", Manufacturer: "WEG", Model: "W22", SerialNumber: "WG-2281934", Type: domain.MotorAC},
		{ID: 2, CompanyID: 1, MotorID: "NPM-FAN-04", Manufacturer: "Baldor", Model: "EM4400", SerialNumber: "BD-994412", Type: domain.MotorAC},
		{ID: 3, CompanyID: 2, MotorID: "HCS-COMP-02", Manufacturer: "Siemens", Model: "1LE1", SerialNumber: "SM-5501287", Type: domain.MotorAC},
		{ID: 4, CompanyID: 3, MotorID: "CQ-CRUSH-01", Manufacturer: "TECO", Model: "MAX-E2", SerialNumber: "TC-118845", Type: domain.MotorDC},
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	motors := motorFixture()
	assert.Equal(t, motors, Filter(motors, Filters{}))
}

func TestFilterByType(t *testing.T) {
	out := Filter(motorFixture(), Filters{Type: "DC"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ID)

	assert.Len(t, Filter(motorFixture(), Filters{Type: "all"}), 4)
}

func TestFilterByCompany(t *testing.T) {
	out := Filter(motorFixture(), Filters{CompanyID: 1})
	assert.Len(t, out, 2)
	for _, m := range out {
		assert.Equal(t, int64(1), m.CompanyID)
	}

	// Zero means no company restriction.
	assert.Len(t, Filter(motorFixture(), Filters{CompanyID: 0}), 4)
}

func TestFilterSearchFields(t *testing.T) {
	bySerial := Filter(motorFixture(), Filters{Search: "sm-5501"})
	assert.Len(t, bySerial, 1)
	assert.Equal(t, int64(3), bySerial[0].ID)

	byManufacturer := Filter(motorFixture(), Filters{Search: "baldor"})
	assert.Len(t, byManufacturer, 1)
	assert.Equal(t, int64(2), byManufacturer[0].ID)

	byTag := Filter(motorFixture(), Filters{Search: "NPM"})
	assert.Len(t, byTag, 2)
}

func TestFilterComposesWithAnd(t *testing.T) {
	out := Filter(motorFixture(), Filters{Search: "npm", Type: "AC", CompanyID: 1})
	assert.Len(t, out, 2)

	none := Filter(motorFixture(), Filters{Search: "npm", Type: "DC"})
	assert.Empty(t, none)
}
