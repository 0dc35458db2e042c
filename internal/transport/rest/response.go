package rest

import (
	"time"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

type categoryResponse struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Is21PlusRequired bool   `json:"is_21_plus_required"`
}

type contactInfoResponse struct {
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Website *string `json:"website,omitempty"`
}

type flyerResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     *string              `json:"description,omitempty"`
	ImageURL        string               `json:"image_url"`
	Category        categoryResponse     `json:"category"`
	Is21Plus        bool                 `json:"is_21_plus"`
	LocationCity    string               `json:"location_city"`
	LocationState   string               `json:"location_state"`
	LocationAddress *string              `json:"location_address,omitempty"`
	EventDate       *string              `json:"event_date,omitempty"`
	EventTime       *string              `json:"event_time,omitempty"`
	ContactInfo     *contactInfoResponse `json:"contact_info,omitempty"`
	IsSaved         bool                 `json:"is_saved"`
	CreatedAt       time.Time            `json:"created_at"`
}

func toFlyerResponse(f domain.Flyer) flyerResponse {
	resp := flyerResponse{
		ID:              f.ID.String(),
		Title:           f.Title,
		Description:     f.Description,
		ImageURL:        f.ImageURL,
		Category:        toCategoryResponse(f.Category),
		Is21Plus:        f.Is21Plus,
		LocationCity:    f.LocationCity,
		LocationState:   f.LocationState,
		LocationAddress: f.LocationAddress,
		EventTime:       f.EventTime,
		IsSaved:         f.IsSaved,
		CreatedAt:       f.CreatedAt,
	}
	if f.EventDate != nil {
		d := f.EventDate.Format("2006-01-02")
		resp.EventDate = &d
	}
	if f.ContactInfo != nil {
		resp.ContactInfo = &contactInfoResponse{
			Email:   f.ContactInfo.Email,
			Phone:   f.ContactInfo.Phone,
			Website: f.ContactInfo.Website,
		}
	}
	return resp
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Is21PlusRequired: c.Is21PlusRequired,
	}
}

func toFlyerResponses(flyers []domain.Flyer) []flyerResponse {
	out := make([]flyerResponse, len(flyers))
	for i, f := range flyers {
		out[i] = toFlyerResponse(f)
	}
	return out
}
