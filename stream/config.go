package stream

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		AnimationSeconds  int    `yaml:"animationSeconds"`
		TransitionSeconds int    `yaml:"transitionSeconds"`
		Easing            string `yaml:"easing"`
	} `yaml:"stream"`
}
