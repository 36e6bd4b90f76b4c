package ads

import (
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
)

func adImageURL(path string) string {
	if path == "" {
		return ""
	}
	return constant.AdImageURLPrefix + path
}

func toAdResponse(ad *model.AdEntity) *model.AdResponse {
	return &model.AdResponse{
		Author: ad.UserID,
		Image:  adImageURL(ad.ImagePath),
		Pk:     ad.ID,
		Price:  ad.Price,
		Title:  ad.Title,
	}
}

func toAdsResponse(ads []model.AdEntity) *model.AdsResponse {
	results := make([]model.AdResponse, 0, len(ads))
	for i := range ads {
		results = append(results, *toAdResponse(&ads[i]))
	}
	return &model.AdsResponse{Count: len(results), Results: results}
}

func toFullAdResponse(ad *model.AdDetail) *model.FullAdResponse {
	return &model.FullAdResponse{
		Pk:              ad.ID,
		AuthorFirstName: ad.AuthorFirstName,
		AuthorLastName:  ad.AuthorLastName,
		Description:     ad.Description,
		Email:           ad.AuthorEmail,
		Image:           adImageURL(ad.ImagePath),
		Phone:           ad.AuthorPhone,
		Price:           ad.Price,
		Title:           ad.Title,
	}
}

func toCommentResponse(c *model.CommentDetail) *model.CommentResponse {
	resp := &model.CommentResponse{
		Author:          c.UserID,
		AuthorFirstName: c.AuthorFirstName,
		CreatedAt:       c.CreatedAt.UnixMilli(),
		Pk:              c.ID,
		Text:            c.Text,
	}
	if c.AuthorImagePath != nil && *c.AuthorImagePath != "" {
		url := constant.UserImageURLPrefix + *c.AuthorImagePath
		resp.AuthorImage = &url
	}
	return resp
}

func toCommentsResponse(comments []model.CommentDetail) *model.CommentsResponse {
	results := make([]model.CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, *toCommentResponse(&comments[i]))
	}
	return &model.CommentsResponse{Count: len(results), Results: results}
}
