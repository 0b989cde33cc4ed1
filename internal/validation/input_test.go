package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("recruiter@agency.ru"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("no-at-sign"))
	assert.Error(t, ValidateEmail("@no-local.ru"))
}

func TestValidatePersonName(t *testing.T) {
	assert.NoError(t, ValidatePersonName("Анна", "Петрова"))
	assert.NoError(t, ValidatePersonName("Jean-Luc", "O'Brien"))
	assert.Error(t, ValidatePersonName("", "Петрова"))
	assert.Error(t, ValidatePersonName("Анна", "Петрова123"))
}

func TestValidatePhone(t *testing.T) {
	ok := "+7 (916) 123-45-67"
	assert.NoError(t, ValidatePhone(&ok))
	assert.NoError(t, ValidatePhone(nil))
	bad := "позвоните мне"
	assert.Error(t, ValidatePhone(&bad))
}

func TestValidateOptionalURL(t *testing.T) {
	ok := "https://linkedin.com/in/anna"
	assert.NoError(t, ValidateOptionalURL("linkedin_url", &ok))
	assert.NoError(t, ValidateOptionalURL("linkedin_url", nil))

	noScheme := "linkedin.com/in/anna"
	assert.Error(t, ValidateOptionalURL("linkedin_url", &noScheme))
	ftp := "ftp://files.example.com/resume.pdf"
	assert.Error(t, ValidateOptionalURL("resume_url", &ftp))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Str0ngPass"))
	assert.Error(t, ValidatePassword("short1A"))
	assert.Error(t, ValidatePassword("alllowercase1"))
	assert.Error(t, ValidatePassword("ALLUPPERCASE1"))
	assert.Error(t, ValidatePassword("NoDigitsHere"))
}
