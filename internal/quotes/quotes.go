// Package quotes serves the rotating weekly reading quote. The pick is a pure
// function of the calendar: the ISO-8601 week number indexes into a fixed
// table, so every caller sees the same quote for the whole week and the table
// cycles roughly once a year.
package quotes

import (
	"math/rand"
	"time"
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Emoji  string `json:"emoji"`
}

var table = []Quote{
	{"The more that you read, the more things you will know. The more that you learn, the more places you'll go.", "Dr. Seuss", "📚"},
	{"There is no friend as loyal as a book.", "Ernest Hemingway", "🤝"},
	{"A reader lives a thousand lives before he dies. The person who never reads lives only one.", "George R.R. Martin", "🌟"},
	{"Reading is dreaming with open eyes.", "Unknown", "✨"},
	{"Books are a uniquely portable magic.", "Stephen King", "🎩"},
	{"Once you learn to read, you will be forever free.", "Frederick Douglass", "🦅"},
	{"I have always imagined that paradise will be a kind of library.", "Jorge Luis Borges", "🏛️"},
	{"Reading gives us someplace to go when we have to stay where we are.", "Mason Cooley", "🗺️"},
	{"A book is a dream that you hold in your hand.", "Neil Gaiman", "💭"},
	{"You can find magic wherever you look. Sit back and relax, all you need is a book.", "Dr. Seuss", "🎪"},
	{"Reading is important, because if you can read, you can learn anything about everything and everything about anything.", "Tomie dePaola", "🌈"},
	{"The best books... are those that tell you what you know already.", "George Orwell", "💡"},
	{"Never trust anyone who has not brought a book with them.", "Lemony Snicket", "📖"},
	{"Reading is to the mind what exercise is to the body.", "Joseph Addison", "💪"},
	{"Books are mirrors: you only see in them what you already have inside you.", "Carlos Ruiz Zafón", "🪞"},
	{"Think before you speak. Read before you think.", "Fran Lebowitz", "🤔"},
	{"A room without books is like a body without a soul.", "Cicero", "🏠"},
	{"Today a reader, tomorrow a leader.", "Margaret Fuller", "👑"},
	{"Reading is a passport to countless adventures.", "Mary Pope Osborne", "🛫"},
	{"The man who does not read has no advantage over the man who cannot read.", "Mark Twain", "📜"},
	{"Reading should not be presented to children as a chore or duty. It should be offered to them as a precious gift.", "Kate DiCamillo", "🎁"},
	{"I find television very educating. Every time somebody turns on the set, I go into the other room and read a book.", "Groucho Marx", "📺"},
	{"There are many little ways to enlarge your child's world. Love of books is the best of all.", "Jacqueline Kennedy", "🌍"},
	{"You don't have to burn books to destroy a culture. Just get people to stop reading them.", "Ray Bradbury", "🔥"},
	{"Words are, in my not-so-humble opinion, our most inexhaustible source of magic.", "J.K. Rowling", "⚡"},
	{"If you don't like to read, you haven't found the right book.", "J.K. Rowling", "🔍"},
	{"Fairy tales are more than true: not because they tell us that dragons exist, but because they tell us that dragons can be beaten.", "Neil Gaiman", "🐉"},
	{"The person who deserves most pity is a lonesome one on a rainy day who doesn't know how to read.", "Benjamin Franklin", "🌧️"},
	{"No two persons ever read the same book.", "Edmund Wilson", "👥"},
	{"A children's story that can only be enjoyed by children is not a good children's story in the slightest.", "C.S. Lewis", "🦁"},
	{"Good friends, good books, and a sleepy conscience: this is the ideal life.", "Mark Twain", "☀️"},
	{"A book is a garden, an orchard, a storehouse, a party, a company by the way, a counselor, a multitude of counselors.", "Charles Baudelaire", "🌳"},
	{"Show me a family of readers, and I will show you the people who move the world.", "Napoléon Bonaparte", "👨‍👩‍👧‍👦"},
	{"You can never get a cup of tea large enough or a book long enough to suit me.", "C.S. Lewis", "☕"},
	{"I kept always two books in my pocket, one to read, one to write in.", "Robert Louis Stevenson", "✍️"},
	{"Let us read, and let us dance; these two amusements will never do any harm to the world.", "Voltaire", "💃"},
	{"Books are the quietest and most constant of friends; they are the most accessible and wisest of counselors.", "Charles William Eliot", "🤗"},
	{"It is not true that we have only one life to live; if we can read, we can live as many more lives and as many kinds of lives as we wish.", "S.I. Hayakawa", "♾️"},
	{"We read to know we're not alone.", "William Nicholson", "💕"},
	{"Wear the old coat and buy the new book.", "Austin Phelps", "🧥"},
	{"One glance at a book and you hear the voice of another person, perhaps someone dead for 1,000 years. To read is to voyage through time.", "Carl Sagan", "⏳"},
	{"Reading is an exercise in empathy; an exercise in walking in someone else's shoes for a while.", "Malorie Blackman", "👟"},
	{"A book is the only place in which you can examine a fragile thought without breaking it.", "Edward P. Morgan", "🦋"},
	{"In the case of good books, the point is not to see how many of them you can get through, but rather how many can get through to you.", "Mortimer J. Adler", "🎯"},
	{"To learn to read is to light a fire; every syllable that is spelled out is a spark.", "Victor Hugo", "🔥"},
	{"Reading makes immigrants of us all. It takes us away from home, but more important, it finds homes for us everywhere.", "Jean Rhys", "🏡"},
	{"Literature is the most agreeable way of ignoring life.", "Fernando Pessoa", "🎭"},
	{"Fill your house with stacks of books, in all the crannies and all the nooks.", "Dr. Seuss", "📚"},
	{"A house without books is like a room without windows.", "Heinrich Mann", "🪟"},
	{"Books are the plane, and the train, and the road. They are the destination, and the journey. They are home.", "Anna Quindlen", "🚂"},
	{"Reading is a conversation. All books talk. But a good book listens as well.", "Mark Haddon", "💬"},
	{"Children are made readers on the laps of their parents.", "Emilie Buchwald", "👶"},
}

// WeekNumber returns the ISO-8601 week of the year for t: weeks start on
// Monday and week 1 is the week containing the year's first Thursday.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ForDate picks the quote for the calendar week containing t.
func ForDate(t time.Time) Quote {
	return table[WeekNumber(t)%len(table)]
}

// Weekly returns the quote for the current week.
func Weekly() Quote {
	return ForDate(time.Now())
}

// Random returns an arbitrary quote, for variety.
func Random() Quote {
	return table[rand.Intn(len(table))]
}

// All returns the full table, for parents to review.
func All() []Quote {
	return append([]Quote(nil), table...)
}
