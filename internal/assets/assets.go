package assets

import "golang.org/x/image/font/gofont/goregular"

// FontTTF is the scalable font used when no font file is given.
var FontTTF = goregular.TTF
