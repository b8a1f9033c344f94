package domain

import (
	"encoding/json"
)

// PlaceholderImageURL is served to the payment processor when a cart line
// carries no resolvable image.
const PlaceholderImageURL = "https://via.placeholder.com/150"

// ImageRef is the tagged union of the image shapes the content backend
// produces: either a direct URL string or a reference to an asset document
// that must be resolved through the CDN. The union is resolved once at the
// boundary instead of optional-chaining at every call site.
type ImageRef struct {
	// DirectURL is a fetchable URL, set when the document projection already
	// dereferenced the asset (`"image": image.asset->url`).
	DirectURL string

	// AssetID is the raw asset reference (e.g. "image-abc123-780x1196-png"),
	// set when the document carries an unexpanded asset pointer.
	AssetID string
}

// imageAsset mirrors the nested asset object shape.
type imageAsset struct {
	Asset struct {
		URL string `json:"url"`
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// IsZero reports whether the reference carries neither a URL nor an asset ID.
func (r ImageRef) IsZero() bool {
	return r.DirectURL == "" && r.AssetID == ""
}

// Resolve returns a fetchable URL. Asset references go through the supplied
// builder (nil builder or empty result falls back to the placeholder).
func (r ImageRef) Resolve(build func(assetID string) string) string {
	if r.DirectURL != "" {
		return r.DirectURL
	}
	if r.AssetID != "" && build != nil {
		if url := build(r.AssetID); url != "" {
			return url
		}
	}
	return PlaceholderImageURL
}

// MarshalJSON writes direct URLs as bare strings, matching the persisted
// cart layout. Unresolved asset references keep the nested object shape so
// a reload can still resolve them.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	if r.DirectURL != "" || r.AssetID == "" {
		return json.Marshal(r.DirectURL)
	}
	var obj imageAsset
	obj.Asset.Ref = r.AssetID
	return json.Marshal(obj)
}

// UnmarshalJSON accepts a bare URL string, {"asset":{"url":...}}, or
// {"asset":{"_ref":...}}.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ImageRef{DirectURL: s}
		return nil
	}

	var obj imageAsset
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Asset.URL != "" {
		*r = ImageRef{DirectURL: obj.Asset.URL}
		return nil
	}
	*r = ImageRef{AssetID: obj.Asset.Ref}
	return nil
}
