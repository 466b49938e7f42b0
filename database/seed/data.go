package seed

import (
	"time"

	"newshub/internal/httpapi/models"
)

func strPtr(s string) *string { return &s }

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DevData is the development fixture set. The paper topic deliberately
// has no articles so the empty-listing path stays exercised.
func DevData() Data {
	return Data{
		Topics: []models.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend", ImgURL: ""},
			{Slug: "cats", Description: "Not dogs", ImgURL: ""},
			{Slug: "paper", Description: "what books are made of", ImgURL: ""},
		},
		Users: []models.User{
			{
				Username:  "butter_bridge",
				Name:      "jonny",
				AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
			},
			{
				Username:  "icellusedkars",
				Name:      "sam",
				AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
			},
			{
				Username:  "rogersop",
				Name:      "paul",
				AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
			},
			{
				Username:  "lurker",
				Name:      "do_nothing",
				AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			},
		},
		Articles: []models.Article{
			{
				Title:         "Living in the shadow of a great man",
				Topic:         strPtr("mitch"),
				Author:        strPtr("butter_bridge"),
				Body:          "I find this existence challenging",
				CreatedAt:     date("2020-07-09T20:11:00Z"),
				Votes:         100,
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
			{
				Title:         "Sony Vaio; or, The Laptop",
				Topic:         strPtr("mitch"),
				Author:        strPtr("icellusedkars"),
				Body:          "Call me Mitchell. Some years ago I thought I would sail about a little and see the watery part of the world.",
				CreatedAt:     date("2020-10-16T05:03:00Z"),
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
			{
				Title:         "Eight pug gifs that remind me of mitch",
				Topic:         strPtr("mitch"),
				Author:        strPtr("icellusedkars"),
				Body:          "some gifs",
				CreatedAt:     date("2020-11-03T09:12:00Z"),
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
			{
				Title:         "UNCOVERED: catspiracy to bring down democracy",
				Topic:         strPtr("cats"),
				Author:        strPtr("rogersop"),
				Body:          "Bastet walks amongst us, and the cats are taking arms!",
				CreatedAt:     date("2020-08-03T13:14:00Z"),
				ArticleImgURL: "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
			},
		},
		Comments: []CommentFixture{
			{
				ArticleTitle: "Living in the shadow of a great man",
				Body:         "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
				Votes:        16,
				Author:       "butter_bridge",
				CreatedAt:    date("2020-04-06T12:17:00Z"),
			},
			{
				ArticleTitle: "Living in the shadow of a great man",
				Body:         "The beautiful thing about treasure is that it exists.",
				Votes:        14,
				Author:       "butter_bridge",
				CreatedAt:    date("2020-10-31T03:03:00Z"),
			},
			{
				ArticleTitle: "Living in the shadow of a great man",
				Body:         "Fruit pastilles",
				Votes:        0,
				Author:       "icellusedkars",
				CreatedAt:    date("2020-06-15T10:25:00Z"),
			},
			{
				ArticleTitle: "Sony Vaio; or, The Laptop",
				Body:         "I hate streaming noses",
				Votes:        0,
				Author:       "icellusedkars",
				CreatedAt:    date("2020-11-03T21:00:00Z"),
			},
			{
				ArticleTitle: "UNCOVERED: catspiracy to bring down democracy",
				Body:         "Lobster pot",
				Votes:        0,
				Author:       "icellusedkars",
				CreatedAt:    date("2020-05-15T20:19:00Z"),
			},
		},
	}
}
