package constant

// Event bus topics.
const ChatMessageCreatedTopic = "chat.message.created"
