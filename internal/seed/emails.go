// Package seed holds the email corpus inserted at database
// initialization and on admin reset.
package seed

import "github.com/jramir7254/phishing-backend/internal/domain"

// Emails returns the seed corpus. The slice is rebuilt on every call so
// callers can't mutate the canonical data.
func Emails() []domain.Email {
	return []domain.Email{
		{
			Category: domain.CategoryLegit,
			Subject:  "Your March invoice is ready",
			SentFrom: "billing@acmehosting.com",
			SentTo:   "accounts@redteamlabs.io",
			Date:     "2025-03-03",
			HTML:     `<p>Hi,</p><p>Your invoice for March is attached. The total of $49.00 will be charged to the card on file on March 10.</p><p>You can view your billing history any time from your account dashboard.</p><p>Acme Hosting Billing</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Minutes from Tuesday's all-hands",
			SentFrom: "maria.ops@redteamlabs.io",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-03-05",
			HTML:     `<p>Team,</p><p>Minutes from Tuesday are on the wiki under <b>Meetings &gt; 2025</b>. Action items are assigned in the tracker.</p><p>Maria</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Password changed successfully",
			SentFrom: "no-reply@github.com",
			SentTo:   "dev@redteamlabs.io",
			Date:     "2025-02-27",
			HTML:     `<p>Your GitHub password was changed.</p><p>If you did not perform this action, visit github.com/settings/security from your browser and review your sessions.</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Welcome to the Q2 security training",
			SentFrom: "training@redteamlabs.io",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-04-01",
			HTML:     `<p>Hello,</p><p>The Q2 security awareness course is now open. Please complete all modules by April 30. The course is available through the internal learning portal.</p><p>Security Training Team</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Your package was delivered",
			SentFrom: "auto-confirm@ups.com",
			SentTo:   "office@redteamlabs.io",
			Date:     "2025-03-12",
			HTML:     `<p>Your package was delivered today at 10:42 AM and was left at the front desk.</p><p>Tracking number: 1Z999AA10123456784</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Reminder: parking lot closed Friday",
			SentFrom: "facilities@redteamlabs.io",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-03-19",
			HTML:     `<p>The east parking lot will be closed this Friday for resurfacing. Street parking is available on 5th Avenue.</p><p>Facilities</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Receipt for your payment to Figma",
			SentFrom: "receipts@figma.com",
			SentTo:   "design@redteamlabs.io",
			Date:     "2025-03-15",
			HTML:     `<p>Thanks for your payment of $144.00 for Figma Professional (annual).</p><p>A PDF copy of this receipt is attached for your records.</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Interview schedule for next week",
			SentFrom: "recruiting@redteamlabs.io",
			SentTo:   "james.lee@redteamlabs.io",
			Date:     "2025-03-21",
			HTML:     `<p>Hi James,</p><p>You're on the panel for two interviews next week. Both invites are on your calendar with the candidate packets linked.</p><p>Thanks for helping out!</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Scheduled maintenance on Saturday",
			SentFrom: "status@cloudprovider.com",
			SentTo:   "ops@redteamlabs.io",
			Date:     "2025-03-25",
			HTML:     `<p>We will perform scheduled maintenance on Saturday from 02:00 to 04:00 UTC. Brief interruptions to API availability are expected. No action is required.</p>`,
		},
		{
			Category: domain.CategoryLegit,
			Subject:  "Your statement is available online",
			SentFrom: "alerts@chase.com",
			SentTo:   "finance@redteamlabs.io",
			Date:     "2025-04-02",
			HTML:     `<p>Your monthly statement is now available. Sign in to chase.com from your browser or mobile app to view it.</p><p>Please do not reply to this message.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "URGENT: Your account will be suspended in 24 hours",
			SentFrom: "security@paypa1-support.com",
			SentTo:   "office@redteamlabs.io",
			Date:     "2025-03-04",
			HTML:     `<p>Dear Customer,</p><p>We detected unusual activity. Your account will be <b>permanently suspended</b> unless you verify your identity within 24 hours.</p><p><a href="http://paypa1-support.com/verify">Verify Account Now</a></p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "You have (3) pending voicemails",
			SentFrom: "voicemail@office365-messages.net",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-03-07",
			HTML:     `<p>You have 3 undelivered voice messages.</p><p><a href="http://office365-messages.net/listen?id=8842">Listen to messages</a></p><p>Messages will be deleted in 48 hours.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "Invoice overdue - immediate payment required",
			SentFrom: "accounting@vendor-payments.co",
			SentTo:   "finance@redteamlabs.io",
			Date:     "2025-03-10",
			HTML:     `<p>Our records show invoice #INV-99123 for $8,450.00 is 60 days overdue. To avoid collections, wire payment today to the updated account details in the attached document.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "IT Helpdesk: mandatory password reset",
			SentFrom: "helpdesk@redteamlabs-it.support",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-03-13",
			HTML:     `<p>All employees must reset their password today due to a security incident.</p><p><a href="http://redteamlabs-it.support/reset">Reset Password</a></p><p>Failure to comply will result in loss of access.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "Re: Quick favor",
			SentFrom: "ceo.redteamlabs@gmail.com",
			SentTo:   "finance@redteamlabs.io",
			Date:     "2025-03-17",
			HTML:     `<p>Are you at your desk? I need you to purchase some gift cards for a client meeting this afternoon. Keep this between us for now, it's a surprise. Send me the card numbers when done.</p><p>Sent from my iPhone</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "Your package could not be delivered",
			SentFrom: "delivery@usps-redelivery.info",
			SentTo:   "office@redteamlabs.io",
			Date:     "2025-03-20",
			HTML:     `<p>We attempted to deliver your package but the address was incomplete.</p><p>Pay a $1.99 redelivery fee to reschedule: <a href="http://usps-redelivery.info/pay">Confirm address and pay</a></p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "DocuSign: Completed document awaiting your signature",
			SentFrom: "dse@docusing-notify.com",
			SentTo:   "legal@redteamlabs.io",
			Date:     "2025-03-24",
			HTML:     `<p>A document has been shared with you and requires your signature.</p><p><a href="http://docusing-notify.com/sign?d=77120">REVIEW DOCUMENT</a></p><p>This is an automated message from DocuSign Electronic Service.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "Congratulations! You've been selected",
			SentFrom: "rewards@amazon-loyalty-program.net",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-03-28",
			HTML:     `<p>You have been selected to receive a $100 Amazon gift card for completing a short survey.</p><p><a href="http://amazon-loyalty-program.net/survey">Claim your reward</a></p><p>Offer expires in 2 hours.</p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "Unusual sign-in activity on your Microsoft account",
			SentFrom: "account-security@micros0ft-alerts.com",
			SentTo:   "dev@redteamlabs.io",
			Date:     "2025-04-01",
			HTML:     `<p>We detected a sign-in from Moscow, Russia.</p><p>If this wasn't you, secure your account immediately: <a href="http://micros0ft-alerts.com/secure">Secure account</a></p>`,
		},
		{
			Category: domain.CategoryPhishing,
			Subject:  "HR: Updated employee handbook - action required",
			SentFrom: "hr-notifications@workday-documents.org",
			SentTo:   "staff@redteamlabs.io",
			Date:     "2025-04-03",
			HTML:     `<p>The employee handbook has been updated. All staff must log in and acknowledge the changes by end of day.</p><p><a href="http://workday-documents.org/login">Acknowledge now</a></p>`,
		},
	}
}
