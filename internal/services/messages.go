package services

// DefaultMessages is the bank of motivational lines shown during a session.
var DefaultMessages = []string{
	"Stay focused, you're doing great!",
	"One step at a time.",
	"Deep breath. Keep going.",
	"Progress, not perfection.",
	"You've got this!",
	"Small wins add up.",
	"Eyes on the task.",
	"Future you says thanks.",
	"Momentum is everything.",
	"Almost there, keep pushing!",
}
