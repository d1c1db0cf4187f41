package main

// article is a document ready for rendering.
type article struct {
	Title    string
	Markdown string
	Source   string
}

const sampleSource = "built-in sample"

func sampleArticle() article {
	return article{
		Title:  "Is a mountain goat an engineer?",
		Source: sampleSource,
		Markdown: `Mountain goats climb slopes that would stop most animals. They do it
without ropes, without maps and, as far as anyone can tell, without worrying.

## Balance first

A goat's hooves are split in two. Each half moves on its own, so the foot
grips uneven rock the way two fingers grip a ledge. Soft pads inside the hoof
work like climbing shoes.

## Reading the wall

Before a jump the goat looks at the landing spot for a long moment. Observers
describe it as "measuring". Whatever it is, the jump usually works.

> The safest route up is rarely the shortest one.

## What we can learn

- Look before you leap, literally.
- Keep a low center of gravity.
- Move one foot at a time when the ground is loose.

None of this makes a goat an engineer, but it does make it a very good
climber. Open the style panel with ctrl+o and try reading this text in a
different size, color or width.
`,
	}
}
