package subimage

const (
	// DefaultDisplayWidth 展示窗口默认宽度
	DefaultDisplayWidth = 800
	// DefaultDisplayHeight 展示窗口默认高度
	DefaultDisplayHeight = 600
	// DefaultSpotlightAlpha 原图在暗化图层中的默认权重
	DefaultSpotlightAlpha = 0.25
)

// Option ImagePair 选项
type Option func(*options)

type options struct {
	displayWidth  int
	displayHeight int
	alpha         float64
}

func defaultOptions() options {
	return options{
		displayWidth:  DefaultDisplayWidth,
		displayHeight: DefaultDisplayHeight,
		alpha:         DefaultSpotlightAlpha,
	}
}

// WithDisplaySize 设置展示窗口尺寸
func WithDisplaySize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.displayWidth = width
			o.displayHeight = height
		}
	}
}

// WithSpotlightAlpha 设置暗化比例，alpha 为原图权重
func WithSpotlightAlpha(alpha float64) Option {
	return func(o *options) {
		if alpha >= 0 && alpha <= 1 {
			o.alpha = alpha
		}
	}
}
