package text

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers   = "0123456789"
	Special   = "#@$%^&*?!"
	Hex       = "0123456789abcdef"

	Whitespace     = " "
	Brackets       = "(){}[]<>"
	MathOperators  = "+-"
	OtherSpecial   = "°§=~.:,;µ|€²³^"
	QuotationMarks = "'\""
	Escapes        = "\t\b\n\r\f\\"

	LowercaseWithNumbers                       = Lowercase + Numbers
	LowercaseWithNumbersAndSpecial             = Lowercase + Numbers + Special
	LowercaseWithUppercaseAndNumbers           = Lowercase + Uppercase + Numbers
	LowercaseWithUppercaseAndNumbersAndSpecial = Lowercase + Uppercase + Numbers + Special
	UppercaseWithNumbers                       = Uppercase + Numbers
	UppercaseWithNumbersAndSpecial             = Uppercase + Numbers + Special
	EscapesWithWhitespace                      = Escapes + QuotationMarks + Whitespace
)
