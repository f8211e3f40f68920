package handler

// Response is the uniform success envelope. Data is omitted for bare
// success responses.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func success(data interface{}) Response {
	return Response{Status: "success", Data: data}
}
