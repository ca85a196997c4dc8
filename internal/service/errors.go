package service

import "errors"

var (
	// ErrMissingField 必填欄位缺漏, 對應HTTP 400
	ErrMissingField = errors.New("missing required field")
	// ErrKeysNotSet partitionKey/rowKey未設置
	ErrKeysNotSet = errors.New("partition key and row key must be set")

	ErrCustomerNotExist = errors.New("customer is not exist")
	ErrProductNotExist  = errors.New("product is not exist")
	ErrOrderNotExist    = errors.New("order is not exist")
)
