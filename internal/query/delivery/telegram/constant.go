package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	startMessage = "👋 Welcome to *Workspace Assistant*!\n\n" +
		"Ask me about your tasks, events, projects, notes and files, for example:\n" +
		"• _What's due this week?_\n" +
		"• _Show me the Website Redesign project_\n" +
		"• _How is the Mobile App project going?_\n\n" +
		"Send /help for more examples."

	helpMessage = "*Things you can ask:*\n\n" +
		"• Deadlines: `tasks due tomorrow`, `what's overdue?`\n" +
		"• Calendar: `meetings next week`, `events in march`\n" +
		"• Projects: `list my active projects`, `timeline for the Apollo project next 14 days`\n" +
		"• Notes: `notes about the Q3 budget`\n" +
		"• Files: `find the file called roadmap`, `show my pdfs`"

	fallbackMessage = "🤔 I couldn't match that to your tasks, events, projects, notes or files. " +
		"Try something like \"what's due this week?\" or send /help."

	failureMessage = "Something went wrong while answering. Please try again."

	// Leaves headroom under the Bot API limit for the truncation marker.
	maxReplyUnits = 3800
	truncatedMark = "\n…"
)
