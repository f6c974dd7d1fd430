package console

const (
	MsgNotFound  = "Person not found."
	MsgNoMembers = "No members registered."
	MsgGoodbye   = "Exiting the program. Goodbye!"
	MsgNone      = "none"
)
