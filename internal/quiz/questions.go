package quiz

import "slices"

// DefaultField is the question set used for unrecognized fields.
const DefaultField = "other"

// Option is one selectable answer. Points is its raw contribution to the score.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Question is a single multiple-choice calibration question.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Options  []Option `json:"options"`
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

func opt(value, label string, points int) Option {
	return Option{Value: value, Label: label, Points: points}
}

var questionSets = map[string][]Question{
	"tech": {
		{ID: "tech_fundamentals", Category: "fundamentals", Text: "How comfortable are you with programming fundamentals (variables, loops, functions)?", Options: []Option{
			opt("none", "I have never written code", 10),
			opt("basic", "I have followed a few tutorials", 30),
			opt("comfortable", "I can write small programs on my own", 60),
			opt("fluent", "I write code regularly without help", 85),
		}},
		{ID: "tech_projects", Category: "practice", Text: "How many complete projects have you built?", Options: []Option{
			opt("zero", "None yet", 10),
			opt("one", "One small project", 35),
			opt("few", "Two to five projects", 60),
			opt("many", "More than five, some used by others", 90),
		}},
		{ID: "tech_tools", Category: "tools", Text: "How do you work with tools like git, the terminal and a debugger?", Options: []Option{
			opt("unfamiliar", "I have not used them", 10),
			opt("aware", "I know what they are", 25),
			opt("daily", "I use them in most sessions", 60),
			opt("advanced", "I customize and automate my workflow", 85),
		}},
		{ID: "tech_problem_solving", Category: "problem_solving", Text: "When you hit an error you do not understand, what usually happens?", Options: []Option{
			opt("stuck", "I get stuck and give up", 10),
			opt("search", "I search until I find a matching answer", 35),
			opt("debug", "I isolate the problem and test hypotheses", 65),
			opt("explain", "I fix it and could explain the root cause", 90),
		}},
		{ID: "tech_experience", Category: "experience", Text: "How long have you been learning or working in tech?", Options: []Option{
			opt("starting", "Just starting", 10),
			opt("months", "A few months", 30),
			opt("year", "Around a year", 55),
			opt("years", "Several years", 85),
		}},
	},
	"exams": {
		{ID: "exams_syllabus", Category: "coverage", Text: "How much of the syllabus have you already studied once?", Options: []Option{
			opt("none", "Almost none", 10),
			opt("quarter", "About a quarter", 30),
			opt("half", "About half", 55),
			opt("most", "Most or all of it", 85),
		}},
		{ID: "exams_mocks", Category: "practice", Text: "How many full-length mock tests have you taken?", Options: []Option{
			opt("zero", "None", 10),
			opt("few", "One to three", 35),
			opt("several", "Four to ten", 60),
			opt("many", "More than ten", 85),
		}},
		{ID: "exams_scores", Category: "performance", Text: "How do your recent practice scores compare with the cut-off?", Options: []Option{
			opt("unknown", "I have no scores yet", 10),
			opt("far", "Well below the cut-off", 25),
			opt("near", "Close to the cut-off", 60),
			opt("above", "At or above the cut-off", 90),
		}},
		{ID: "exams_revision", Category: "consistency", Text: "How regular is your revision?", Options: []Option{
			opt("rare", "I rarely revise", 10),
			opt("before_tests", "Only before tests", 30),
			opt("weekly", "Weekly", 60),
			opt("scheduled", "On a fixed spaced schedule", 85),
		}},
		{ID: "exams_attempts", Category: "experience", Text: "Have you attempted this exam before?", Options: []Option{
			opt("first", "This will be my first attempt", 15),
			opt("once", "Once, without serious preparation", 35),
			opt("prepared", "Once with full preparation", 60),
			opt("multiple", "Multiple prepared attempts", 80),
		}},
	},
	"business": {
		{ID: "business_idea", Category: "validation", Text: "How validated is your business idea?", Options: []Option{
			opt("idea", "It is only an idea", 10),
			opt("research", "I have done desk research", 30),
			opt("interviews", "I have talked to potential customers", 60),
			opt("paying", "I already have paying customers", 90),
		}},
		{ID: "business_finance", Category: "finance", Text: "How comfortable are you with pricing, costs and cash flow?", Options: []Option{
			opt("none", "Not at all", 10),
			opt("basic", "I understand the basics", 35),
			opt("spreadsheet", "I can build a simple financial model", 60),
			opt("managed", "I have managed a budget or P&L", 85),
		}},
		{ID: "business_sales", Category: "sales", Text: "Have you sold a product or service before?", Options: []Option{
			opt("never", "Never", 10),
			opt("informal", "Informally to friends", 30),
			opt("some", "Yes, a handful of sales", 55),
			opt("regular", "Yes, regularly", 85),
		}},
		{ID: "business_marketing", Category: "marketing", Text: "How would you reach your first hundred customers?", Options: []Option{
			opt("unsure", "I am not sure yet", 10),
			opt("social", "Posting on social media", 30),
			opt("channel", "A specific channel I have tested", 65),
			opt("audience", "An audience I already have", 85),
		}},
		{ID: "business_experience", Category: "experience", Text: "What is your experience running projects or teams?", Options: []Option{
			opt("none", "None", 10),
			opt("school", "School or hobby projects", 30),
			opt("work", "Led projects at work", 60),
			opt("founder", "Founded or ran a business", 90),
		}},
	},
	"sports": {
		{ID: "sports_fitness", Category: "conditioning", Text: "How would you rate your current fitness?", Options: []Option{
			opt("low", "I rarely exercise", 10),
			opt("casual", "I exercise occasionally", 30),
			opt("regular", "I train two to four times a week", 60),
			opt("athlete", "I train almost every day", 85),
		}},
		{ID: "sports_technique", Category: "technique", Text: "How solid is your technique in this sport?", Options: []Option{
			opt("new", "I am new to it", 10),
			opt("learning", "I know the basics", 35),
			opt("consistent", "I perform skills consistently", 60),
			opt("refined", "My technique has been coached and refined", 85),
		}},
		{ID: "sports_competition", Category: "experience", Text: "What competition experience do you have?", Options: []Option{
			opt("none", "None", 10),
			opt("friendly", "Friendly matches", 30),
			opt("local", "Local tournaments", 60),
			opt("regional", "Regional or higher", 90),
		}},
		{ID: "sports_recovery", Category: "conditioning", Text: "How do you handle recovery and injuries?", Options: []Option{
			opt("ignore", "I do not think about it", 10),
			opt("rest", "I rest when something hurts", 30),
			opt("routine", "I follow a recovery routine", 60),
			opt("planned", "Recovery is planned into my training", 80),
		}},
		{ID: "sports_coaching", Category: "technique", Text: "Do you train with a coach?", Options: []Option{
			opt("never", "Never", 10),
			opt("videos", "I follow videos", 25),
			opt("sometimes", "Occasional sessions", 55),
			opt("regular", "A regular coach", 85),
		}},
	},
	"arts": {
		{ID: "arts_practice", Category: "practice", Text: "How often do you practice your art?", Options: []Option{
			opt("rarely", "Rarely", 10),
			opt("monthly", "A few times a month", 30),
			opt("weekly", "Several times a week", 60),
			opt("daily", "Daily", 85),
		}},
		{ID: "arts_training", Category: "technique", Text: "What formal training have you had?", Options: []Option{
			opt("none", "None", 10),
			opt("self", "Self-taught from books or videos", 30),
			opt("classes", "Regular classes", 60),
			opt("formal", "Formal or graded training", 85),
		}},
		{ID: "arts_body_of_work", Category: "portfolio", Text: "How much finished work do you have?", Options: []Option{
			opt("none", "Nothing finished yet", 10),
			opt("sketches", "Sketches or drafts", 30),
			opt("pieces", "A few finished pieces", 55),
			opt("portfolio", "A portfolio or repertoire", 85),
		}},
		{ID: "arts_feedback", Category: "portfolio", Text: "Have you shared or performed your work publicly?", Options: []Option{
			opt("never", "Never", 10),
			opt("friends", "With friends and family", 30),
			opt("online", "Online or at small events", 60),
			opt("professional", "In professional settings", 90),
		}},
		{ID: "arts_theory", Category: "technique", Text: "How well do you know the theory behind your art form?", Options: []Option{
			opt("none", "Not at all", 10),
			opt("some", "Some concepts", 35),
			opt("solid", "I apply theory deliberately", 60),
			opt("deep", "I could teach it", 85),
		}},
	},
	"govt": {
		{ID: "govt_syllabus", Category: "coverage", Text: "How familiar are you with the exam pattern and syllabus?", Options: []Option{
			opt("unaware", "I have not read it yet", 10),
			opt("read", "I have read it once", 30),
			opt("mapped", "I have mapped it to sources", 60),
			opt("mastered", "I know it by heart", 85),
		}},
		{ID: "govt_current_affairs", Category: "current_affairs", Text: "How do you follow current affairs?", Options: []Option{
			opt("rarely", "Rarely", 10),
			opt("headlines", "Headlines only", 30),
			opt("daily", "Daily newspaper", 60),
			opt("notes", "Daily newspaper with notes", 85),
		}},
		{ID: "govt_answer_writing", Category: "practice", Text: "How much answer-writing or mock practice have you done?", Options: []Option{
			opt("none", "None", 10),
			opt("little", "A little", 30),
			opt("regular", "Regular practice", 60),
			opt("reviewed", "Regular practice with reviews", 85),
		}},
		{ID: "govt_prelims", Category: "performance", Text: "How have you done in previous preliminary exams or mocks?", Options: []Option{
			opt("none", "No attempts yet", 15),
			opt("below", "Below cut-off", 30),
			opt("near", "Near the cut-off", 60),
			opt("cleared", "Cleared", 85),
		}},
		{ID: "govt_optional", Category: "coverage", Text: "How prepared is your optional or specialized subject?", Options: []Option{
			opt("undecided", "Not chosen yet", 10),
			opt("chosen", "Chosen, not started", 25),
			opt("halfway", "About halfway", 55),
			opt("complete", "Completed with revision", 85),
		}},
	},
	"other": {
		{ID: "other_knowledge", Category: "knowledge", Text: "How much do you already know about this goal area?", Options: []Option{
			opt("nothing", "Almost nothing", 10),
			opt("basics", "The basics", 35),
			opt("good", "A good amount", 60),
			opt("expert", "I am quite experienced", 85),
		}},
		{ID: "other_practice", Category: "practice", Text: "How much hands-on practice have you done?", Options: []Option{
			opt("none", "None", 10),
			opt("some", "Some occasional practice", 30),
			opt("regular", "Regular practice", 60),
			opt("extensive", "Extensive practice", 85),
		}},
		{ID: "other_consistency", Category: "consistency", Text: "How consistent have you been with past goals?", Options: []Option{
			opt("struggle", "I usually drop them early", 10),
			opt("mixed", "Mixed results", 35),
			opt("mostly", "I finish most of them", 60),
			opt("always", "I reliably finish what I start", 85),
		}},
		{ID: "other_resources", Category: "resources", Text: "Do you have the resources you need (material, mentors, tools)?", Options: []Option{
			opt("none", "Not yet", 10),
			opt("searching", "I am gathering them", 30),
			opt("most", "Most of them", 60),
			opt("all", "Everything I need", 85),
		}},
		{ID: "other_results", Category: "knowledge", Text: "Have you achieved measurable results in this area before?", Options: []Option{
			opt("no", "No", 10),
			opt("small", "Small wins", 35),
			opt("clear", "Clear results", 60),
			opt("recognized", "Recognized results", 90),
		}},
	},
}

// ForField returns the calibration questions for field in their fixed order.
// Unrecognized fields use the DefaultField set.
func ForField(field string) []Question {
	if qs, ok := questionSets[field]; ok {
		return slices.Clone(qs)
	}
	return slices.Clone(questionSets[DefaultField])
}
