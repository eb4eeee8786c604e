package email

import (
	"fmt"
)

// WelcomeEmailData contains the data needed for the registration welcome email.
type WelcomeEmailData struct {
	FirstName string
	Email     string
	AppName   string
	BaseURL   string
}

// BuildWelcomeEmail creates a welcome message for newly registered patients.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Telecare"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s!

Your account is ready. Complete your onboarding to get matched with a doctor:
%s/onboarding

Thanks,
The %s Team`,
		firstName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Welcome to %s!</p>
    <p>Your account is ready. Complete your onboarding to get matched with a doctor:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s/onboarding" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Start Onboarding</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AssignmentEmailData contains the data needed for the doctor assignment email.
type AssignmentEmailData struct {
	FirstName  string
	Email      string
	DoctorName string
	Specialty  string
	AppName    string
	BaseURL    string
}

// BuildAssignmentEmail creates a notification sent when onboarding completes
// and a doctor has been assigned to the patient.
func BuildAssignmentEmail(data AssignmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Telecare"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("You've been matched with Dr. %s", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Good news! You've been matched with Dr. %s (%s).

You can start chatting with your doctor right away:
%s/chat

Thanks,
The %s Team`,
		firstName, data.DoctorName, data.Specialty, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Good news! You've been matched with <strong>Dr. %s</strong> (%s).</p>
    <p>You can start chatting with your doctor right away:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s/chat" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Open Chat</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.DoctorName, data.Specialty, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
