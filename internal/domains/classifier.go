package domains

import "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"

const ClassifierName = "classifier"

type Classifier interface {
	Scan(request *dto.ScanRequest) (*dto.ScanResult, error)
}
