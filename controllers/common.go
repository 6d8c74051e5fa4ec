package controllers

import "errors"

// errBadInput đánh dấu lỗi dữ liệu từ client bên trong callback Update
// của store, để controller map ra 400 thay vì 500.
var errBadInput = errors.New("dữ liệu không hợp lệ")
