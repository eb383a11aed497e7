// Package seed carries the demo dataset the memory store boots with.
package seed

import "crm-inbox-backend/internal/model"

func Users() []model.UserItem {
	return []model.UserItem{
		{UserID: "1", Name: "Aisha Patel", Initials: "AP", Email: "aisha.patel@example.com", Phone: "+44 1234 567890", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "2 hours ago", Verified: true},
		{UserID: "2", Name: "Matt Lanham", Initials: "ML", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "1 hour ago", Verified: false},
		{UserID: "3", Name: "Marcus Thompson", Initials: "MT", Email: "marcus.thompson@example.com", Phone: "+44 3456 789012", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "2 hours ago", Verified: true},
		{UserID: "4", Name: "Elena Rodriguez", Initials: "ER", Email: "elena.rodriguez@example.com", Phone: "+44 4567 890123", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "3 hours ago", Verified: true},
		{UserID: "5", Name: "Dmitri Volkov", Initials: "DV", Email: "dmitri.volkov@example.com", Phone: "+44 5678 901234", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "5 hours ago", Verified: true},
		{UserID: "6", Name: "Luna Chen", Initials: "LC", Email: "luna.chen@example.com", Phone: "+44 6789 012345", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "1 day ago", Verified: true},
		{UserID: "7", Name: "Aria Singh", Initials: "AS", Email: "aria.singh@example.com", Phone: "+44 7890 123456", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "2 days ago", Verified: true},
		{UserID: "8", Name: "Jasmine Kim", Initials: "JK", Email: "jasmine.kim@example.com", Phone: "+44 8901 234567", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "2 days ago", Verified: true},
		{UserID: "9", Name: "Rafael Silva", Initials: "RS", Email: "rafael.silva@example.com", Phone: "+44 9012 345678", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "3 days ago", Verified: true},
		{UserID: "10", Name: "Anastasia Petrov", Initials: "AP", Email: "anastasia.petrov@example.com", Phone: "+44 0123 456789", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "3 days ago", Verified: true},
		{UserID: "11", Name: "Caleb Okafor", Initials: "CO", Email: "caleb.okafor@example.com", Phone: "+44 1234 567890", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "4 days ago", Verified: true},
		{UserID: "12", Name: "Maya Nakamura", Initials: "MN", Email: "maya.nakamura@example.com", Phone: "+44 2345 678901", Language: "English", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", LastSeen: "4 days ago", Verified: true},
	}
}

func Agents() []model.AgentItem {
	return []model.AgentItem{
		{AgentID: "agent-1", Name: "Sarah Johnson", Initials: "SJ", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeAgent, Status: model.AgentStatusOnline, IsAvailable: true, Verified: true},
		{AgentID: "agent-2", Name: "Mike Chen", Initials: "MC", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeAgent, Status: model.AgentStatusOnline, IsAvailable: true, Verified: true},
		{AgentID: "agent-3", Name: "Emma Wilson", Initials: "EW", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeAgent, Status: model.AgentStatusAway, IsAvailable: false, Verified: true},
		{AgentID: "agent-4", Name: "David Brown", Initials: "DB", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeAgent, Status: model.AgentStatusOffline, IsAvailable: false, Verified: true},
		{AgentID: "team-1", Name: "Undergrad Admissions", Initials: "UA", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeTeam, Status: model.AgentStatusOnline, IsAvailable: true, Verified: true},
		{AgentID: "team-2", Name: "Postgrad Admissions", Initials: "PA", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeTeam, Status: model.AgentStatusOnline, IsAvailable: true, Verified: true},
		{AgentID: "team-3", Name: "International Admissions", Initials: "IA", AvatarBg: "bg-slate-100", AvatarText: "text-slate-700", Type: model.AgentTypeTeam, Status: model.AgentStatusAway, IsAvailable: false, Verified: true},
	}
}

func Conversations() []model.ConversationItem {
	return []model.ConversationItem{
		{ConversationID: "1", UserID: "1", Status: model.ConversationStatusActive, LastMessage: "I'm really excited about the scholarship opportunities you mentioned! When is the application deadline?", LastMessageTime: "45m"},
		{ConversationID: "2", UserID: "2", Status: model.ConversationStatusActive, LastMessage: "Thank you! I'll check out the link. Just one more thing, could you provide me with information about the financial aid and tuition costs?", LastMessageTime: "1h"},
		{ConversationID: "3", UserID: "3", Status: model.ConversationStatusActive, LastMessage: "Thanks for the quick response yesterday. The solution worked perfectly!", LastMessageTime: "2h"},
		{ConversationID: "4", UserID: "4", Status: model.ConversationStatusActive, LastMessage: "You: Can we schedule a call for next week? I'd like to discuss the project details.", LastMessageTime: "3h", UnreadCount: 1},
		{ConversationID: "5", UserID: "5", Status: model.ConversationStatusActive, LastMessage: "I've sent over the updated proposal. Let me know if you need any changes.", LastMessageTime: "5h"},
		{ConversationID: "6", UserID: "6", Status: model.ConversationStatusClosed, LastMessage: "You: The new dashboard looks amazing! Great work on the redesign.", LastMessageTime: "1d"},
		{ConversationID: "7", UserID: "7", Status: model.ConversationStatusActive, LastMessage: "You: Could you please send me the latest project update?", LastMessageTime: "2d"},
		{ConversationID: "8", UserID: "8", Status: model.ConversationStatusActive, LastMessage: "I'm interested in learning more about your services.", LastMessageTime: "2d"},
		{ConversationID: "9", UserID: "9", Status: model.ConversationStatusClosed, LastMessage: "You: The meeting went well yesterday. Thanks for your time!", LastMessageTime: "3d"},
		{ConversationID: "10", UserID: "10", Status: model.ConversationStatusActive, LastMessage: "You: I have some questions about the pricing structure.", LastMessageTime: "3d"},
		{ConversationID: "11", UserID: "11", Status: model.ConversationStatusActive, LastMessage: "Looking forward to our collaboration on this project.", LastMessageTime: "4d"},
		{ConversationID: "12", UserID: "12", Status: model.ConversationStatusActive, LastMessage: "You: Can we reschedule our call for next Tuesday?", LastMessageTime: "4d"},
	}
}

func Messages() []model.MessageItem {
	read := func(text string) *model.MessageStatus {
		return &model.MessageStatus{Status: model.DeliveryStatusRead, StatusText: text}
	}

	return []model.MessageItem{
		{MessageID: "msg-001", ConversationID: "1", SenderID: "1", Body: "Hi! I'm interested in the computer science program. What are the admission requirements?", Timestamp: "2h", Info: model.MessageInfo{Channel: "Admissions live chat", Page: "Computer Science Program", Received: "08/01/2024 @ 16:30", SentTo: "admissions@geckouniversity.ac.uk", CC: "cs@geckouniversity.ac.uk"}},
		{MessageID: "msg-002", ConversationID: "1", SenderID: "agent-1", Body: "Hello! Great to hear you're interested in our Computer Science program. The main requirements are: High school diploma with strong math grades, SAT/ACT scores, and a personal statement. We also recommend some programming experience.", Timestamp: "1h", Info: model.MessageInfo{Source: "ChatGPT", Channel: "Admissions live chat", Page: "Computer Science Program", Received: "08/01/2024 @ 16:31"}, Status: read("Read")},
		{MessageID: "msg-003", ConversationID: "1", SenderID: "1", Body: "I'm really excited about the scholarship opportunities you mentioned! When is the application deadline?", Timestamp: "45m", Info: model.MessageInfo{Channel: "Admissions live chat", Page: "Computer Science Program", Received: "08/01/2024 @ 16:45", SentTo: "admissions@geckouniversity.ac.uk", CC: "cs@geckouniversity.ac.uk"}},
		{MessageID: "msg-004", ConversationID: "2", SenderID: "2", Body: "Hey", Timestamp: "4h", Info: model.MessageInfo{Channel: "Admissions live chat", Page: "Undergraduate Admissions", Received: "08/01/2024 @ 15:54", SentTo: "info@geckouniversity.ac.uk", CC: "finance@geckouniversity.ac.uk"}},
		{MessageID: "msg-005", ConversationID: "2", SenderID: "2", Body: "I'm considering applying to Gecko University. Do you offer work-study programs?", Timestamp: "3h", Info: model.MessageInfo{Channel: "Admissions live chat", Page: "Undergraduate Admissions", Received: "08/01/2024 @ 15:55", SentTo: "info@geckouniversity.ac.uk", CC: "finance@geckouniversity.ac.uk"}},
		{MessageID: "msg-006", ConversationID: "2", SenderID: "agent-1", Body: "Absolutely! We offer work-study opportunities aligned with your field of study. More info here: www.geckou.edu/work-study. If you need further assistance, feel free to ask. We're here to help!", Timestamp: "2h", Info: model.MessageInfo{Source: "ChatGPT", Channel: "Admissions live chat", Page: "Undergraduate Admissions", Received: "08/01/2024 @ 15:56"}, Status: read("Message has been read")},
		{MessageID: "msg-007", ConversationID: "2", SenderID: "2", Body: "Thank you! I'll check out the link. Just one more thing, could you provide me with information about the financial aid and tuition costs?", Timestamp: "1h", Info: model.MessageInfo{Channel: "Admissions live chat", Page: "Undergraduate Admissions", Received: "08/01/2024 @ 15:58"}},
		{MessageID: "msg-008", ConversationID: "3", SenderID: "3", Body: "I'm having trouble accessing my student portal. Can you help?", Timestamp: "3d", Info: model.MessageInfo{Channel: "Support live chat", Page: "Student Portal", Received: "07/01/2024 @ 14:20", SentTo: "support@geckouniversity.ac.uk"}},
		{MessageID: "msg-009", ConversationID: "3", SenderID: "agent-1", Body: "Of course! I can help you with that. Can you tell me what error message you're seeing when you try to log in?", Timestamp: "3d", Info: model.MessageInfo{Source: "ChatGPT", Channel: "Support live chat", Page: "Student Portal", Received: "07/01/2024 @ 14:22"}, Status: read("Read")},
		{MessageID: "msg-010", ConversationID: "3", SenderID: "3", Body: "Thanks for the quick response yesterday. The solution worked perfectly!", Timestamp: "2h", Info: model.MessageInfo{Channel: "Support live chat", Page: "Student Portal", Received: "08/01/2024 @ 10:30", SentTo: "support@geckouniversity.ac.uk"}},
		{MessageID: "msg-011", ConversationID: "4", SenderID: "4", Body: "Hi, I'm interested in your research collaboration program. Could you send me more information?", Timestamp: "4h", Info: model.MessageInfo{Channel: "Research live chat", Page: "Collaboration Program", Received: "07/01/2024 @ 11:15", SentTo: "research@geckouniversity.ac.uk"}},
		{MessageID: "msg-012", ConversationID: "4", SenderID: "agent-1", Body: "I'd be happy to help! I'll send you our collaboration program brochure and application form. What's your research area?", Timestamp: "4h", Info: model.MessageInfo{Source: "ChatGPT", Channel: "Research live chat", Page: "Collaboration Program", Received: "07/01/2024 @ 11:18"}, Status: read("Read")},
		{MessageID: "msg-013", ConversationID: "4", SenderID: "4", Body: "Can we schedule a call for next week? I'd like to discuss the project details.", Timestamp: "3h", Info: model.MessageInfo{Channel: "Research live chat", Page: "Collaboration Program", Received: "08/01/2024 @ 13:45", SentTo: "research@geckouniversity.ac.uk"}},
		{MessageID: "msg-014", ConversationID: "5", SenderID: "5", Body: "I've sent over the updated proposal. Let me know if you need any changes.", Timestamp: "5h", Info: model.MessageInfo{Channel: "Email", Page: "Proposal Review", Received: "08/01/2024 @ 08:30", SentTo: "partnerships@geckouniversity.ac.uk"}},
		{MessageID: "msg-015", ConversationID: "6", SenderID: "6", Body: "The new dashboard looks amazing! Great work on the redesign.", Timestamp: "3d", Info: model.MessageInfo{Channel: "Feedback live chat", Page: "Student Dashboard", Received: "07/01/2024 @ 16:20", SentTo: "feedback@geckouniversity.ac.uk"}},
		{MessageID: "msg-016", ConversationID: "7", SenderID: "7", Body: "Could you please send me the latest project update?", Timestamp: "2d", Info: model.MessageInfo{Channel: "Email", Page: "Project Updates", Received: "06/01/2024 @ 09:15", SentTo: "projects@geckouniversity.ac.uk"}},
		{MessageID: "msg-017", ConversationID: "8", SenderID: "8", Body: "I'm interested in learning more about your services.", Timestamp: "2d", Info: model.MessageInfo{Channel: "General inquiry", Page: "Services Overview", Received: "06/01/2024 @ 14:30", SentTo: "info@geckouniversity.ac.uk"}},
		{MessageID: "msg-018", ConversationID: "9", SenderID: "9", Body: "The meeting went well yesterday. Thanks for your time!", Timestamp: "2d", Info: model.MessageInfo{Channel: "Follow-up email", Page: "Meeting Follow-up", Received: "05/01/2024 @ 10:45", SentTo: "meetings@geckouniversity.ac.uk"}},
		{MessageID: "msg-019", ConversationID: "10", SenderID: "10", Body: "I have some questions about the pricing structure.", Timestamp: "2d", Info: model.MessageInfo{Channel: "Pricing inquiry", Page: "Pricing Information", Received: "05/01/2024 @ 15:20", SentTo: "pricing@geckouniversity.ac.uk"}},
		{MessageID: "msg-020", ConversationID: "11", SenderID: "11", Body: "Looking forward to our collaboration on this project.", Timestamp: "2d", Info: model.MessageInfo{Channel: "Partnership email", Page: "Collaboration Agreement", Received: "04/01/2024 @ 11:30", SentTo: "partnerships@geckouniversity.ac.uk"}},
		{MessageID: "msg-021", ConversationID: "12", SenderID: "12", Body: "Can we reschedule our call for next Tuesday?", Timestamp: "2d", Info: model.MessageInfo{Channel: "Scheduling email", Page: "Meeting Reschedule", Received: "04/01/2024 @ 16:45", SentTo: "scheduling@geckouniversity.ac.uk"}},
	}
}

func Workflows() []model.WorkflowItem {
	liam := model.WorkflowAuthor{Name: "Liam Young", Initials: "LY", Avatar: "/mike.jpg"}
	amy := model.WorkflowAuthor{Name: "Amy Hart", Initials: "AH", Avatar: "/sarah.jpg"}
	charlie := model.WorkflowAuthor{Name: "Charlie Francis", Initials: "CF", Avatar: "/emma.jpg"}

	return []model.WorkflowItem{
		{WorkflowID: "1", Name: "Show queue position", Trigger: "During conversation", Active: true, Author: liam},
		{WorkflowID: "2", Name: "Add contact to a broadcast", Trigger: "After conversation ends", Active: false, Author: liam},
		{WorkflowID: "3", Name: "Engagement score", Trigger: "After conversation ends", Active: true, Author: amy},
		{WorkflowID: "4", Name: "Add message on close", Trigger: "After conversation ends", Active: true, Author: liam},
		{WorkflowID: "5", Name: "Add label on close", Trigger: "After conversation ends", Active: false, Author: charlie},
		{WorkflowID: "6", Name: "Send a pre-chat message", Trigger: "Before conversation starts", Active: true, Author: charlie},
		{WorkflowID: "7", Name: "Send message from the bot", Trigger: "Before conversation starts", Active: true, Author: liam},
		{WorkflowID: "8", Name: "Close conversations", Trigger: "After conversation ends", Active: true, Author: charlie},
		{WorkflowID: "9", Name: "Hide chat widget during non-working hours", Trigger: "Before conversation starts", Active: true, Author: amy},
		{WorkflowID: "10", Name: "Add contact to an event", Trigger: "After conversation ends", Active: false, Author: amy},
	}
}
