package utils

import (
	"fmt"
	"time"
)

// RenderCertificate produces the downloadable certificate document for a
// completed course. The renderer is deliberately simple; a dedicated
// document-rendering service can replace it behind the same contract.
func RenderCertificate(userName, courseName, certificateNumber string, issuedAt time.Time) []byte {
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Certificate of Completion</title></head>
<body style="font-family: Georgia, serif; text-align: center; padding: 60px;">
	<div style="border: 6px double #4CAF50; padding: 50px; max-width: 700px; margin: auto;">
		<h1 style="letter-spacing: 4px;">CERTIFICATE OF COMPLETION</h1>
		<p style="font-size: 18px;">This certifies that</p>
		<h2 style="font-size: 32px; margin: 10px 0;">%s</h2>
		<p style="font-size: 18px;">has successfully completed the course</p>
		<h3 style="font-size: 24px; color: #4CAF50; margin: 10px 0;">%s</h3>
		<p style="margin-top: 40px;">Certificate No: <strong>%s</strong></p>
		<p>Issued on %s</p>
	</div>
</body>
</html>
`, userName, courseName, certificateNumber, issuedAt.Format("02 January 2006"))

	return []byte(doc)
}
