package all

import (
	_ "github.com/bornholm/upline/pkg/assets/local"
	_ "github.com/bornholm/upline/pkg/assets/s3"
)
