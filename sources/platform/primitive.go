package platform

func BoolPtr(b bool) *bool {
	return &b
}