package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"strconv"
	"sync"

	"gopkg.in/gomail.v2"

	"github.com/zacharvey88/teatime-collective-sub000/config"
)

// OrderEmailItem is one enriched order line as it appears in both emails.
type OrderEmailItem struct {
	Name          string
	Size          string
	Details       string
	Quantity      int
	Price         string
	WritingOnCake string
}

// OrderEmailData feeds both the customer confirmation and the owner
// notification templates.
type OrderEmailData struct {
	OrderCode       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CollectionDate  string
	Allergies       string
	SpecialRequests string
	Items           []OrderEmailItem
	TotalPrice      string
	OrderDate       string
}

// CustomerSubject and OwnerSubject frame the same order for the two
// recipients.
func CustomerSubject(data OrderEmailData) string {
	return fmt.Sprintf("Your Teatime Collective order %s", data.OrderCode)
}

func OwnerSubject(data OrderEmailData) string {
	return fmt.Sprintf("New order request %s from %s", data.OrderCode, data.CustomerName)
}

func renderEmailTemplate(path string, data OrderEmailData) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// sendMail is swapped out in tests.
var sendMail = func(m *gomail.Message) error {
	port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	d := gomail.NewDialer(
		config.Config("SMTP_HOST"),
		port,
		config.Config("SMTP_USERNAME"),
		config.Config("SMTP_PASSWORD"),
	)
	return d.DialAndSend(m)
}

func buildCustomerEmail(from string, data OrderEmailData, qrPng []byte) (*gomail.Message, error) {
	body, err := renderEmailTemplate("templates/order_confirmation.html", data)
	if err != nil {
		return nil, err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", data.CustomerEmail)
	m.SetHeader("Subject", CustomerSubject(data))
	m.SetBody("text/html", body)
	if len(qrPng) > 0 {
		m.Embed("collection_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPng)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<collection_qr>"},
			"Content-Disposition": {"inline"},
		}))
	}
	return m, nil
}

func buildOwnerEmail(from, notifyTo string, data OrderEmailData) (*gomail.Message, error) {
	body, err := renderEmailTemplate("templates/order_notification.html", data)
	if err != nil {
		return nil, err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", notifyTo)
	m.SetHeader("Subject", OwnerSubject(data))
	m.SetBody("text/html", body)
	return m, nil
}

// SendOrderEmails dispatches the customer confirmation and the owner
// notification concurrently. The two sends succeed or fail independently so
// the caller can report exactly which recipient was not reached; a failed
// send never affects the persisted order.
func SendOrderEmails(from, notifyTo string, data OrderEmailData, qrPng []byte) (customerErr, ownerErr error) {
	customerMsg, cErr := buildCustomerEmail(from, data, qrPng)
	ownerMsg, oErr := buildOwnerEmail(from, notifyTo, data)

	var wg sync.WaitGroup
	if cErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cErr = sendMail(customerMsg)
		}()
	}
	if oErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			oErr = sendMail(ownerMsg)
		}()
	}
	wg.Wait()

	if cErr != nil {
		log.Printf("customer confirmation for %s failed: %v", data.OrderCode, cErr)
	}
	if oErr != nil {
		log.Printf("owner notification for %s failed: %v", data.OrderCode, oErr)
	}
	return cErr, oErr
}
