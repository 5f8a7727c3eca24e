package render

const vertex = `
#version 420

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}

`
const fragment = `
#version 420

layout (binding = 0) uniform sampler2D framebuffer;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // Pixel state is stored in the red channel: zero for unlit, non-zero
    // for lit. Map it to black and white.
    float on = texture2D(framebuffer, fragTexCoord).r > 0.0 ? 1.0 : 0.0;

    outputColor = mix(vec4(0, 0, 0, 1), vec4(1, 1, 1, 1), on);
}
`
