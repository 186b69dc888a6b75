package dto

import "tokoaing-store/internal/model"

type PurchaseItem struct {
	Type        model.PurchaseType `json:"type"`
	ProductName string             `json:"productName"`
	ProductID   string             `json:"productId,omitempty"` // product purchases only
}

type CreatePurchaseResponse struct {
	ID string `json:"id"`
}

type UpdatePurchaseStatusRequest struct {
	Status model.PurchaseStatus `json:"status"` // success | rejected
	Prize  string               `json:"prize,omitempty"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	IsActive    bool   `json:"isActive"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	BuyLink     string `json:"buyLink"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	MaxStock    *int    `json:"maxStock,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	BuyLink     *string `json:"buyLink,omitempty"`
}

// Updates maps the supplied fields onto column assignments. Absent
// fields stay untouched, so concurrent edits of different fields of
// the same product merge cleanly.
func (r *UpdateProductRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Stock != nil {
		updates["stock"] = *r.Stock
	}
	if r.MaxStock != nil {
		updates["max_stock"] = *r.MaxStock
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.BuyLink != nil {
		updates["buy_link"] = *r.BuyLink
	}
	return updates
}

type CreateUserRequest struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type UpdateUserRequest struct {
	Nickname *string `json:"nickname,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r *UpdateUserRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Nickname != nil {
		updates["nickname"] = *r.Nickname
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

type CreateReviewRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type UpdateReviewRequest struct {
	Author *string `json:"author,omitempty"`
	Text   *string `json:"text,omitempty"`
}

func (r *UpdateReviewRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Author != nil {
		updates["author"] = *r.Author
	}
	if r.Text != nil {
		updates["text"] = *r.Text
	}
	return updates
}

type SendMessageRequest struct {
	UserID string `json:"userId"` // recipient
	Text   string `json:"text"`
}

type SendGlobalMessageRequest struct {
	Text string `json:"text"`
}

type CreateButtonRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"isActive"`
}

type UpdateButtonRequest struct {
	Name     *string `json:"name,omitempty"`
	URL      *string `json:"url,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r *UpdateButtonRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.URL != nil {
		updates["url"] = *r.URL
	}
	if r.Icon != nil {
		updates["icon"] = *r.Icon
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
