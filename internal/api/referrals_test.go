package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralLink(t *testing.T) {
	link := ReferralLink("https://platform.example.com", "ABC123")
	assert.Equal(t, "https://platform.example.com/register?ref=ABC123", link)
}

func TestReferralLinkEscapesCode(t *testing.T) {
	link := ReferralLink("http://localhost:8000", "a b&c")
	assert.Equal(t, "http://localhost:8000/register?ref=a+b%26c", link)
}
