package notify

import "fmt"

// layout wraps an HTML fragment in the portal's email frame.
func layout(title, body string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B3A5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1B3A5C; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>EduPortal</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">You receive this email because you have an EduPortal account.</div>
		</div>
	</body>
	</html>
	`, title, body)
}
