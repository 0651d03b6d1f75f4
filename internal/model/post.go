package model

type GeneratedContent struct {
	Title           string
	MetaDescription string
	PostContent     string
}
