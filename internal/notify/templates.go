package notify

import "fmt"

type rendered struct {
	Subject string
	Body    string
}

// render produces the plain-text email for a message. Unknown kinds get a
// generic update so a new Kind can never panic the dispatcher.
func render(m Message) rendered {
	switch m.Kind {
	case KindApplicationReceived:
		return rendered{
			Subject: "Loan Application Received",
			Body: fmt.Sprintf(
				"Dear %s,\n\nThank you for submitting your loan application for $%.2f. "+
					"Our team will review it within 2-3 business days and may reach out "+
					"for additional documents.\n\nBest regards,\nThe Lending Team",
				m.Name, m.Amount),
		}
	case KindApplicationConditional:
		return rendered{
			Subject: "Your Loan Application Has Been Conditionally Approved",
			Body: fmt.Sprintf(
				"Dear %s,\n\nYour loan application for $%.2f has been conditionally "+
					"approved.\n\nConditions:\n%s\n\nOur team will be in touch to collect "+
					"the required documents.\n\nBest regards,\nThe Lending Team",
				m.Name, m.Amount, m.Conditions),
		}
	case KindApplicationApproved:
		return rendered{
			Subject: "Congratulations! Your Loan Has Been Approved",
			Body: fmt.Sprintf(
				"Dear %s,\n\nWe're pleased to inform you that your loan application for "+
					"$%.2f has been approved. Our team will contact you shortly to "+
					"finalize the disbursement.\n\nBest regards,\nThe Lending Team",
				m.Name, m.Amount),
		}
	case KindApplicationRejected:
		body := fmt.Sprintf(
			"Dear %s,\n\nAfter careful review, we are unable to approve your "+
				"application at this time.", m.Name)
		if m.Reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", m.Reason)
		}
		body += "\n\nYou are welcome to apply again in the future.\n\nBest regards,\nThe Lending Team"
		return rendered{Subject: "Loan Application Update", Body: body}
	case KindPaymentReminder:
		return rendered{
			Subject: "Payment Reminder",
			Body: fmt.Sprintf(
				"Dear %s,\n\nThis is a reminder that a balance of $%.2f on your loan of "+
					"$%.2f was due on %s. Please arrange payment at your earliest "+
					"convenience.\n\nBest regards,\nThe Lending Team",
				m.Name, m.AmountDue, m.Amount, m.DueDate.Format("January 2, 2006")),
		}
	}
	return rendered{
		Subject: "Loan Account Update",
		Body:    fmt.Sprintf("Dear %s,\n\nThere is an update on your loan account.\n\nBest regards,\nThe Lending Team", m.Name),
	}
}
