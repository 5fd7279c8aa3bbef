// internal/services/notification_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jyotsnadesigns/storefront-backend/internal/config"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

// NotificationService delivers the two order emails and the admin
// WhatsApp message. Every send is best-effort: the order is placed
// whether or not any of them goes through.
type NotificationService struct {
	config     *config.Config
	httpClient *http.Client
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyOrderPlaced runs all order-placed notifications. Intended to be
// called from a goroutine after the order is persisted; failures are
// logged and never propagated.
func (s *NotificationService) NotifyOrderPlaced(order *models.Order) {
	if err := s.SendCustomerConfirmation(order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to send customer confirmation email")
	}
	if err := s.SendAdminNotification(order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to send admin notification email")
	}
	if err := s.SendAdminWhatsApp(order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to send admin WhatsApp message")
	}
}

type orderEmailRow struct {
	Name        string
	Quantity    int
	Variant     string
	LineTotal   string
	ImageURL    string
	ProductLink string
}

type orderEmailData struct {
	OrderID     string
	OrderDate   string
	Name        string
	Phone       string
	Email       string
	Address     string
	Rows        []orderEmailRow
	Shipping    string
	Tax         string
	Total       string
	BrandName   string
}

func (s *NotificationService) SendCustomerConfirmation(order *models.Order) error {
	tmpl := s.getEmailTemplate("order_confirmation")

	body, err := s.renderTemplate(tmpl.Body, s.buildEmailData(order))
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmation - %s", order.ID)
	return s.sendEmail(order.Email, subject, body)
}

func (s *NotificationService) SendAdminNotification(order *models.Order) error {
	if s.config.Email.AdminEmail == "" {
		logrus.WithField("order_id", order.ID).Warn("Admin email not configured, skipping notification")
		return nil
	}

	tmpl := s.getEmailTemplate("admin_new_order")

	body, err := s.renderTemplate(tmpl.Body, s.buildEmailData(order))
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("New Order Received - %s", order.ID)
	return s.sendEmail(s.config.Email.AdminEmail, subject, body)
}

// SendAdminWhatsApp posts the order summary to the configured WhatsApp
// gateway webhook (Twilio-style {to, message} payload).
func (s *NotificationService) SendAdminWhatsApp(order *models.Order) error {
	if s.config.WhatsApp.WebhookURL == "" {
		logrus.WithField("order_id", order.ID).Debug("WhatsApp webhook not configured, skipping message")
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":      s.config.WhatsApp.AdminNumber,
		"message": s.buildWhatsAppMessage(order),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal WhatsApp payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.config.WhatsApp.WebhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to post WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	return nil
}

func (s *NotificationService) buildEmailData(order *models.Order) orderEmailData {
	rows := make([]orderEmailRow, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, orderEmailRow{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Variant:     variantLabel(item),
			LineTotal:   formatAmount(item.LineTotal()),
			ImageURL:    item.ImageURL,
			ProductLink: fmt.Sprintf("%s/product/%s", s.config.Frontend.BaseURL, item.ProductID),
		})
	}

	// Free shipping, no tax
	return orderEmailData{
		OrderID:   order.ID.String(),
		OrderDate: order.CreatedAt.Format("02 Jan 2006 15:04"),
		Name:      order.Name,
		Phone:     order.Phone,
		Email:     order.Email,
		Address:   order.Address,
		Rows:      rows,
		Shipping:  formatAmount(0),
		Tax:       formatAmount(0),
		Total:     formatAmount(order.TotalAmount()),
		BrandName: s.config.Email.FromName,
	}
}

func (s *NotificationService) buildWhatsAppMessage(order *models.Order) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "NEW ORDER RECEIVED!\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n\n", order.ID)
	fmt.Fprintf(&b, "Customer Details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", order.Name)
	fmt.Fprintf(&b, "- Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "- Email: %s\n", order.Email)
	fmt.Fprintf(&b, "- Address: %s\n\n", order.Address)
	fmt.Fprintf(&b, "Items Ordered:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s (Qty: %d)%s - %s\n", item.Name, item.Quantity, variantLabel(item), formatAmount(item.LineTotal()))
	}
	fmt.Fprintf(&b, "\nTotal Amount: %s\n\n", formatAmount(order.TotalAmount()))
	fmt.Fprintf(&b, "Please contact the customer to confirm the order and arrange payment & delivery.")

	return b.String()
}

func variantLabel(item models.OrderItem) string {
	label := ""
	if item.SelectedSize != "" {
		label += " - Size: " + item.SelectedSize
	}
	if item.SelectedColor != "" {
		label += " - Color: " + item.SelectedColor
	}
	return label
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" || s.config.Email.SMTPUsername == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email not configured, skipping send")
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	msg := []byte(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_confirmation": {
			Subject: "Order Confirmation",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you for your order, {{.Name}}!</h2>
	<p>Your order <strong>{{.OrderID}}</strong> was placed on {{.OrderDate}}.</p>
	<table style="width: 100%">
	{{range .Rows}}
	<tr style="vertical-align: top">
		<td style="padding: 24px 8px 0 4px">
			<a href="{{.ProductLink}}" target="_blank"><img style="height: 64px" height="64px" src="{{.ImageURL}}" alt="item" /></a>
		</td>
		<td style="padding: 24px 8px 0 8px; width: 100%">
			<a href="{{.ProductLink}}" target="_blank" style="text-decoration: none; color: inherit;"><div>{{.Name}}</div></a>
			<div style="font-size: 14px; color: #888; padding-top: 4px">QTY: {{.Quantity}}{{.Variant}}</div>
		</td>
		<td style="padding: 24px 4px 0 0; white-space: nowrap"><strong>{{.LineTotal}}</strong></td>
	</tr>
	{{end}}
	</table>
	<p>Shipping: {{.Shipping}}<br>Tax: {{.Tax}}<br><strong>Total: {{.Total}}</strong></p>
	<p>We will contact you shortly to confirm payment and delivery details.</p>
	<p>Best regards,<br>{{.BrandName}}</p>
</body>
</html>`,
		},
		"admin_new_order": {
			Subject: "New Order Received",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New order {{.OrderID}}</h2>
	<p>Placed on {{.OrderDate}}.</p>
	<h3>Customer</h3>
	<p>{{.Name}}<br>{{.Phone}}<br>{{.Email}}<br>{{.Address}}</p>
	<h3>Items</h3>
	<ul>
	{{range .Rows}}
		<li>{{.Name}} (Qty: {{.Quantity}}){{.Variant}} - {{.LineTotal}}</li>
	{{end}}
	</ul>
	<p><strong>Total: {{.Total}}</strong></p>
	<p>Please contact the customer to confirm the order and arrange payment &amp; delivery.</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.OrderID}}</p>",
	}
}
