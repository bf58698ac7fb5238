package domain

// builtinValues is the default catalog of known values.
var builtinValues = []Card{
	{Name: "Acceptance", Desc: "to be accepted as I am"},
	{Name: "Accuracy", Desc: "to be correct in my opinions and beliefs"},
	{Name: "Achievement", Desc: "to have important accomplishments"},
	{Name: "Adventure", Desc: "to have new and exciting experiences"},
	{Name: "Authority", Desc: "to be in charge of and responsible for others"},
	{Name: "Autonomy", Desc: "to be self-determined and independent"},
	{Name: "Beauty", Desc: "to appreciate beauty around me"},
	{Name: "Caring", Desc: "to take care of others"},
	{Name: "Challenge", Desc: "to take on difficult tasks and problems"},
	{Name: "Comfort", Desc: "to have a pleasant and comfortable life"},
	{Name: "Commitment", Desc: "to make enduring, meaningful commitments"},
	{Name: "Compassion", Desc: "to feel and act on concern for others"},
	{Name: "Contribution", Desc: "to make a lasting contribution in the world"},
	{Name: "Courtesy", Desc: "to be considerate and polite toward others"},
	{Name: "Creativity", Desc: "to have new and original ideas"},
	{Name: "Curiosity", Desc: "to keep asking questions and learning"},
	{Name: "Duty", Desc: "to carry out my duties and obligations"},
	{Name: "Ecology", Desc: "to live in harmony with the environment"},
	{Name: "Fairness", Desc: "to be fair to others"},
	{Name: "Faithfulness", Desc: "to be loyal and true in relationships"},
	{Name: "Family", Desc: "to have a happy, loving family"},
	{Name: "Flexibility", Desc: "to adjust to new circumstances easily"},
	{Name: "Forgiveness", Desc: "to be forgiving of others"},
	{Name: "Friendship", Desc: "to have close, supportive friends"},
	{Name: "Fun", Desc: "to play and have fun"},
	{Name: "Generosity", Desc: "to give what I have to others"},
	{Name: "Growth", Desc: "to keep changing and growing"},
	{Name: "Health", Desc: "to be physically well and healthy"},
	{Name: "Honesty", Desc: "to be honest and truthful"},
	{Name: "Humility", Desc: "to be modest and unassuming"},
	{Name: "Humor", Desc: "to see the humorous side of myself and the world"},
	{Name: "Independence", Desc: "to be free from dependence on others"},
	{Name: "Inner Peace", Desc: "to experience personal peace"},
	{Name: "Justice", Desc: "to promote fair and equal treatment for all"},
	{Name: "Knowledge", Desc: "to learn and contribute valuable knowledge"},
	{Name: "Leisure", Desc: "to take time to relax and enjoy"},
	{Name: "Mastery", Desc: "to be competent in my everyday activities"},
	{Name: "Moderation", Desc: "to avoid excesses and find a middle ground"},
	{Name: "Openness", Desc: "to be open to new experiences, ideas, and options"},
	{Name: "Purpose", Desc: "to have meaning and direction in my life"},
	{Name: "Rationality", Desc: "to be guided by reason and logic"},
	{Name: "Responsibility", Desc: "to make and carry out responsible decisions"},
	{Name: "Safety", Desc: "to be safe and secure"},
	{Name: "Self-Control", Desc: "to be disciplined in my own actions"},
	{Name: "Simplicity", Desc: "to live life simply, with minimal needs"},
	{Name: "Spirituality", Desc: "to grow and mature spiritually"},
	{Name: "Stability", Desc: "to have a life that stays fairly constant"},
	{Name: "Tolerance", Desc: "to accept and respect those who differ from me"},
	{Name: "Tradition", Desc: "to follow respected patterns of the past"},
	{Name: "Wealth", Desc: "to have plenty of money"},
}

// BuiltinValues returns a copy of the default values catalog.
func BuiltinValues() []Card {
	return append([]Card(nil), builtinValues...)
}
