package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStoreCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BAR_[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateStoreCode()
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateEmployeeCode(t *testing.T) {
	assert.Equal(t, "BAR_7K2M9QX1_EMP0001", GenerateEmployeeCode("BAR_7K2M9QX1", 1))
	assert.Equal(t, "BAR_7K2M9QX1_EMP0042", GenerateEmployeeCode("BAR_7K2M9QX1", 42))
}

func TestGenerateInviteCodeUnique(t *testing.T) {
	first := GenerateInviteCode()
	second := GenerateInviteCode()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "+")
}
