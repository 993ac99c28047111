package models

import "time"

// ResponseModel is the base envelope for every JSON API response.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the envelope timestamp in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// ListResponse is the data payload for endpoints returning a collection.
type ListResponse struct {
	List  interface{} `json:"list"`
	Count int         `json:"count"`
}

// EntryResponse is the data payload for endpoints returning a single value.
type EntryResponse struct {
	Entry interface{} `json:"entry"`
}

// NewOKResponse wraps data in a 200 envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse wraps a collection in a 200 envelope.
func NewListResponse(list interface{}, count int) ResponseModel {
	return NewOKResponse(ListResponse{List: list, Count: count})
}

// NewEntryResponse wraps a single entry in a 200 envelope.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryResponse{Entry: entry})
}
