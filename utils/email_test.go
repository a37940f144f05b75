package utils

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func sampleOrderData() OrderEmailData {
	return OrderEmailData{
		OrderCode:     "ORD-ABCD1234",
		CustomerName:  "Jo Bloggs",
		CustomerEmail: "jo@example.com",
		CustomerPhone: "07700900000",
		Items: []OrderEmailItem{
			{Name: "Chocolate Fudge", Size: "6 inch", Quantity: 2, Price: "£50.00"},
		},
		TotalPrice: "£50.00",
		OrderDate:  "31 August 2026 14:30",
	}
}

// tests run from the package dir, so point the templates at the repo root
func useRepoTemplates(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Dir(wd)))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestSubjects(t *testing.T) {
	data := sampleOrderData()
	assert.Equal(t, "Your Teatime Collective order ORD-ABCD1234", CustomerSubject(data))
	assert.Equal(t, "New order request ORD-ABCD1234 from Jo Bloggs", OwnerSubject(data))
}

func TestSendOrderEmailsIndependentOutcomes(t *testing.T) {
	useRepoTemplates(t)

	orig := sendMail
	t.Cleanup(func() { sendMail = orig })

	var mu sync.Mutex
	var sent []string
	sendMail = func(m *gomail.Message) error {
		to := m.GetHeader("To")[0]
		mu.Lock()
		sent = append(sent, to)
		mu.Unlock()
		if to == "orders@teatimecollective.co.uk" {
			return errors.New("smtp timeout")
		}
		return nil
	}

	customerErr, ownerErr := SendOrderEmails(
		"noreply@teatimecollective.co.uk",
		"orders@teatimecollective.co.uk",
		sampleOrderData(), nil,
	)

	assert.NoError(t, customerErr)
	assert.EqualError(t, ownerErr, "smtp timeout")
	assert.Len(t, sent, 2)
}

func TestSendOrderEmailsBothSucceed(t *testing.T) {
	useRepoTemplates(t)

	orig := sendMail
	t.Cleanup(func() { sendMail = orig })
	sendMail = func(m *gomail.Message) error { return nil }

	customerErr, ownerErr := SendOrderEmails("from@x.com", "owner@x.com", sampleOrderData(), []byte{0x89, 'P', 'N', 'G'})
	assert.NoError(t, customerErr)
	assert.NoError(t, ownerErr)
}

func TestRenderEmailTemplates(t *testing.T) {
	useRepoTemplates(t)

	data := sampleOrderData()
	data.CollectionDate = "Saturday 12 September 2026"
	data.Allergies = "nuts"

	body, err := renderEmailTemplate("templates/order_confirmation.html", data)
	require.NoError(t, err)
	assert.Contains(t, body, "ORD-ABCD1234")
	assert.Contains(t, body, "Chocolate Fudge")
	assert.Contains(t, body, "cid:collection_qr")
	assert.Contains(t, body, "Saturday 12 September 2026")

	body, err = renderEmailTemplate("templates/order_notification.html", data)
	require.NoError(t, err)
	assert.Contains(t, body, "jo@example.com")
	assert.Contains(t, body, "nuts")
	assert.Contains(t, body, "£50.00")
}
