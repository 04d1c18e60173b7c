package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDays(t *testing.T) {
	days, err := ParseDays("30, 60,90")
	assert.NoError(t, err)
	assert.Equal(t, []int{30, 60, 90}, days)

	days, err = ParseDays("")
	assert.NoError(t, err)
	assert.Empty(t, days)

	_, err = ParseDays("30,abc")
	assert.Error(t, err)

	_, err = ParseDays("0")
	assert.Error(t, err)
}

func TestBoolDefaults(t *testing.T) {
	var c Configuration
	assert.True(t, c.FileCompleteRequiresPhaseOne())
	assert.False(t, c.AutoStartOnboarding())

	off := false
	c.Onboarding.FileCompleteRequiresPhaseOne = &off
	assert.False(t, c.FileCompleteRequiresPhaseOne())
}

func TestDSN(t *testing.T) {
	var c Configuration
	c.Database.Host = "db"
	c.Database.User = "u"
	c.Database.Password = "p"
	c.Database.Name = "hris"
	c.Database.Port = "5432"
	c.Database.SSLMode = "disable"

	assert.Equal(t, "host=db user=u password=p dbname=hris port=5432 sslmode=disable", c.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/hris?sslmode=disable", c.MigrateURL())
}
